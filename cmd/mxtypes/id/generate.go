// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

type generateRoomParams struct {
	cli.CommonFlags
	Server string
	Count  int
}

func generateRoomCommand() *cli.Command {
	var params generateRoomParams

	return &cli.Command{
		Name:    "generate-room",
		Summary: "Print random room IDs",
		Description: `Print a room ID with an 18-character random alphanumeric localpart
on the given server. The server comes from --server, or from
generate.server in the config.`,
		Usage: "mxtypes id generate-room [--server name] [--count n]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("generate-room", pflag.ContinueOnError)
			params.AddFlags(flagSet, false)
			flagSet.StringVar(&params.Server, "server", "", "server name (default: generate.server from config)")
			flagSet.IntVarP(&params.Count, "count", "n", 1, "number of room IDs to print")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Five room IDs on a local test server",
				Command:     "mxtypes id generate-room --server localhost:8008 -n 5",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("generate-room takes no positional arguments, got %q", args[0])
			}
			session, err := params.Open(os.Stdout, "id/generate-room")
			if err != nil {
				return err
			}
			return runGenerateRoom(session, params.Server, params.Count, rand.Reader)
		},
	}
}

func runGenerateRoom(session *cli.Session, serverText string, count int, random io.Reader) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	server, err := generateServer(session, serverText)
	if err != nil {
		return err
	}

	for range count {
		room, err := ref.NewRoomID(server, random)
		if err != nil {
			return err
		}
		if err := session.Output.Line(room.String()); err != nil {
			return err
		}
	}
	return nil
}

func generateServer(session *cli.Session, serverText string) (ref.ServerName, error) {
	if serverText != "" {
		server, err := ref.ParseServerName(serverText)
		if err != nil {
			return ref.ServerName{}, fmt.Errorf("--server: %w", err)
		}
		return server, nil
	}
	server, err := session.Config.GenerateServer()
	if err != nil {
		return ref.ServerName{}, err
	}
	if server.IsZero() {
		return ref.ServerName{}, fmt.Errorf("no server name: pass --server or set generate.server in the config")
	}
	return server, nil
}
