// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete mxtypes command tree.
package commands

import (
	"fmt"
	"os"

	attachmentcmd "github.com/bureau-foundation/mxtypes/cmd/mxtypes/attachment"
	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	contentcmd "github.com/bureau-foundation/mxtypes/cmd/mxtypes/content"
	idcmd "github.com/bureau-foundation/mxtypes/cmd/mxtypes/id"
	"github.com/bureau-foundation/mxtypes/lib/version"
)

// Root builds and returns the complete mxtypes command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "mxtypes",
		Description: `mxtypes: Matrix identifiers and extensible-event content.

Validate room, user, event and alias identifiers, build matrix.to
links, decode and convert message content between JSON and CBOR, and
encrypt or decrypt media attachments.`,
		Version: version.Full,
		Subcommands: []*cli.Command{
			idcmd.Command(),
			contentcmd.Command(),
			attachmentcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return fmt.Errorf("version takes no arguments")
					}
					fmt.Fprintf(os.Stdout, "mxtypes %s\n", version.Info())
					return nil
				},
			},
		},
	}
}
