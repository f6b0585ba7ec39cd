// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"

// Command returns the "content" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "content",
		Summary: "Decode, validate and convert event content",
		Description: `Decode extensible-event content (m.message, m.notice, m.emote,
m.file, m.image, or any custom type) and print it as JSON, YAML, CBOR,
or CBOR diagnostic notation.`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Validate an event fixture and print it as YAML",
				Command:     "mxtypes content decode -f yaml event.jsonc",
			},
			{
				Description: "Convert bare image content to CBOR",
				Command:     "mxtypes content encode --type m.image image.json > image.cbor",
			},
			{
				Description: "Inspect CBOR content",
				Command:     "mxtypes content decode --type m.image -f diag image.cbor",
			},
		},
	}
}
