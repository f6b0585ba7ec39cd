// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attachment

import "github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"

// Command returns the "attachment" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "attachment",
		Summary: "Encrypt and decrypt media attachments",
		Description: `Encrypt a file the way Matrix clients do for encrypted rooms
(AES-256-CTR with a SHA-256 ciphertext hash, version v2), or decrypt a
downloaded attachment with the file facet that references it.`,
		Subcommands: []*cli.Command{
			encryptCommand(),
			decryptCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Encrypt a photo and keep the facet",
				Command:     "mxtypes attachment encrypt --url mxc://example.com/abc --mimetype image/png photo.png photo.enc > facet.json",
			},
			{
				Description: "Decrypt it again",
				Command:     "mxtypes attachment decrypt --file facet.json photo.enc photo.png",
			},
		},
	}
}
