// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attachment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/attachment"
	"github.com/bureau-foundation/mxtypes/lib/schema"
)

type decryptParams struct {
	cli.CommonFlags
	FacetPath string
}

func decryptCommand() *cli.Command {
	var params decryptParams

	return &cli.Command{
		Name:    "decrypt",
		Summary: "Decrypt an attachment using its file facet",
		Description: `Decrypt <input> with the bundle from a file facet and write the
plaintext to <output> (mode 0600).

--file names a JSON (or JSONC) file holding the
org.matrix.msc1767.file object, as printed by "attachment encrypt" or
copied from an event. The ciphertext hash is checked before anything is
written. A facet without encryption info copies the input unchanged.`,
		Usage: "mxtypes attachment decrypt --file facet.json [flags] <input> <output>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decrypt", pflag.ContinueOnError)
			params.AddFlags(flagSet, false)
			flagSet.StringVar(&params.FacetPath, "file", "", "path to the file facet JSON (required)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("decrypt requires <input> and <output>, got %d arguments", len(args))
			}
			session, err := params.Open(os.Stdout, "attachment/decrypt")
			if err != nil {
				return err
			}
			return runDecrypt(session, args[0], args[1], params.FacetPath)
		},
	}
}

func runDecrypt(session *cli.Session, inputPath, outputPath, facetPath string) error {
	if facetPath == "" {
		return fmt.Errorf("--file is required")
	}
	file, err := readFacet(facetPath)
	if err != nil {
		return err
	}

	ciphertext, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	plaintext, err := attachment.DecryptFile(ciphertext, file)
	if err != nil {
		return fmt.Errorf("decrypt %s: %w", inputPath, err)
	}
	defer clear(plaintext)

	if file.Info.Size != nil && *file.Info.Size != uint64(len(plaintext)) {
		session.Logger.Warn("decrypted size differs from the facet's recorded size",
			"recorded", *file.Info.Size, "actual", len(plaintext))
	}
	if !file.IsEncrypted() {
		session.Logger.Warn("file facet has no encryption info; copying input unchanged", "url", file.URL.String())
	}

	if err := os.WriteFile(outputPath, plaintext, 0o600); err != nil {
		return err
	}
	session.Logger.Debug("attachment decrypted", "input", inputPath, "output", outputPath, "size", len(plaintext))
	return nil
}

func readFacet(path string) (schema.FileContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.FileContent{}, err
	}
	var file schema.FileContent
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return schema.FileContent{}, fmt.Errorf("read file facet %s: %w", path, err)
	}
	return file, nil
}
