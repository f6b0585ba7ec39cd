// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import "github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"

// Command returns the "id" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "id",
		Summary: "Validate identifiers and build matrix.to links",
		Description: `Work with Matrix identifiers: room IDs (!), room aliases (#),
user IDs (@), event IDs ($), server names, and mxc:// content URIs.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			matrixToCommand(),
			generateRoomCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Validate a user ID",
				Command:     "mxtypes id parse user @alice:example.com",
			},
			{
				Description: "Link to a room with a routing hint",
				Command:     "mxtypes id matrix-to '!abc:example.com' --via example.org",
			},
			{
				Description: "Generate a room ID",
				Command:     "mxtypes id generate-room --server example.com",
			},
		},
	}
}
