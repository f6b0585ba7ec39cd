// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

type matrixToParams struct {
	cli.CommonFlags
	Via  []string
	Room string
}

func matrixToCommand() *cli.Command {
	var params matrixToParams

	return &cli.Command{
		Name:    "matrix-to",
		Summary: "Print the matrix.to link for an identifier",
		Description: `Print the https://matrix.to/#/ link for a room ID, room alias, user
ID, or event ID. The kind is taken from the sigil.

Room and event links carry routing hints (?via=server) from --via, or
from matrix_to.via in the config when no --via is given. Alias and user
links take no hints.

An event link needs the room it lives in: pass --room.`,
		Usage: "mxtypes id matrix-to <id> [--via server]... [--room room-id]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("matrix-to", pflag.ContinueOnError)
			params.AddFlags(flagSet, false)
			flagSet.StringArrayVar(&params.Via, "via", nil, "routing hint server name (repeatable)")
			flagSet.StringVar(&params.Room, "room", "", "room ID containing the event (event links only)")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Room link with two routing hints",
				Command:     "mxtypes id matrix-to '!abc:example.com' --via example.org --via example.net",
			},
			{
				Description: "Event link",
				Command:     "mxtypes id matrix-to '$event:example.com' --room '!abc:example.com'",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("matrix-to requires exactly one identifier, got %d arguments", len(args))
			}
			session, err := params.Open(os.Stdout, "id/matrix-to")
			if err != nil {
				return err
			}
			return runMatrixTo(session, args[0], params.Via, params.Room)
		},
	}
}

func runMatrixTo(session *cli.Session, text string, viaFlags []string, roomText string) error {
	via, err := resolveVia(session, viaFlags)
	if err != nil {
		return err
	}

	link, err := matrixToLink(text, via, roomText)
	if err != nil {
		return err
	}
	if len(via) > 0 && !acceptsVia(text) {
		session.Logger.Warn("routing hints apply only to room and event links; ignoring them", "id", text)
	}
	return session.Output.Line(link.String())
}

// resolveVia returns the --via servers, or the configured defaults when
// none were given.
func resolveVia(session *cli.Session, viaFlags []string) ([]ref.ServerName, error) {
	if len(viaFlags) == 0 {
		return session.Config.ViaServers()
	}
	via := make([]ref.ServerName, 0, len(viaFlags))
	for _, raw := range viaFlags {
		server, err := ref.ParseServerName(raw)
		if err != nil {
			return nil, fmt.Errorf("--via: %w", err)
		}
		via = append(via, server)
	}
	return via, nil
}

func matrixToLink(text string, via []ref.ServerName, roomText string) (ref.MatrixToRef, error) {
	if text == "" {
		return ref.MatrixToRef{}, fmt.Errorf("empty identifier: %w", ref.ErrMissingLeadingSigil)
	}
	if text[0] != '$' && roomText != "" {
		return ref.MatrixToRef{}, fmt.Errorf("--room applies only to event IDs")
	}

	switch text[0] {
	case '!':
		room, err := ref.ParseRoomID(text)
		if err != nil {
			return ref.MatrixToRef{}, err
		}
		return room.MatrixToURL(via...), nil
	case '#':
		alias, err := ref.ParseRoomAlias(text)
		if err != nil {
			return ref.MatrixToRef{}, err
		}
		return alias.MatrixToURL(), nil
	case '@':
		user, err := ref.ParseUserID(text)
		if err != nil {
			return ref.MatrixToRef{}, err
		}
		return user.MatrixToURL(), nil
	case '$':
		event, err := ref.ParseEventID(text)
		if err != nil {
			return ref.MatrixToRef{}, err
		}
		if roomText == "" {
			return ref.MatrixToRef{}, fmt.Errorf("event link for %s needs --room", text)
		}
		room, err := ref.ParseRoomID(roomText)
		if err != nil {
			return ref.MatrixToRef{}, fmt.Errorf("--room: %w", err)
		}
		return event.MatrixToURL(room, via...), nil
	default:
		return ref.MatrixToRef{}, fmt.Errorf("identifier %q must start with '!', '#', '@' or '$': %w", text, ref.ErrMissingLeadingSigil)
	}
}

func acceptsVia(text string) bool {
	return text != "" && (text[0] == '!' || text[0] == '$')
}
