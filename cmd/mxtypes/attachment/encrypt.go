// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attachment

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/attachment"
	"github.com/bureau-foundation/mxtypes/lib/ref"
	"github.com/bureau-foundation/mxtypes/lib/schema"
)

type encryptParams struct {
	cli.CommonFlags
	URL      string
	Name     string
	MimeType string
}

func encryptCommand() *cli.Command {
	var params encryptParams

	return &cli.Command{
		Name:    "encrypt",
		Summary: "Encrypt a file and print its file facet",
		Description: `Encrypt <input> with a fresh random key, write the ciphertext to
<output>, and print the org.matrix.msc1767.file object (url, metadata,
and the decryption bundle) as JSON.

--url is the mxc:// URI the ciphertext will be uploaded to. --name
defaults to the input's base name. The recorded size is the plaintext
size.`,
		Usage: "mxtypes attachment encrypt --url mxc://server/id [flags] <input> <output>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encrypt", pflag.ContinueOnError)
			params.AddFlags(flagSet, false)
			flagSet.StringVar(&params.URL, "url", "", "mxc:// URI of the uploaded ciphertext (required)")
			flagSet.StringVar(&params.Name, "name", "", "file name to record (default: input base name)")
			flagSet.StringVar(&params.MimeType, "mimetype", "", "MIME type to record")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("encrypt requires <input> and <output>, got %d arguments", len(args))
			}
			session, err := params.Open(os.Stdout, "attachment/encrypt")
			if err != nil {
				return err
			}
			return runEncrypt(session, args[0], args[1], params, rand.Reader)
		},
	}
}

func runEncrypt(session *cli.Session, inputPath, outputPath string, params encryptParams, random io.Reader) (err error) {
	if params.URL == "" {
		return fmt.Errorf("--url is required")
	}
	url, err := ref.ParseMxcURI(params.URL)
	if err != nil {
		return fmt.Errorf("--url: %w", err)
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()
	stat, err := input.Stat()
	if err != nil {
		return err
	}
	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", inputPath)
	}

	output, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, output.Close())
		if err != nil {
			os.Remove(outputPath)
		}
	}()

	encryption, err := attachment.Encrypt(input, output, random)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", inputPath, err)
	}

	name := params.Name
	if name == "" {
		name = stat.Name()
	}
	size := uint64(stat.Size())
	file := schema.EncryptedFileContent(url, encryption, schema.FileInfo{
		Name:     name,
		MimeType: params.MimeType,
		Size:     &size,
	})
	session.Logger.Debug("attachment encrypted", "input", inputPath, "output", outputPath, "size", size)

	return session.Output.JSON(file)
}
