// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/config"
)

type encodeParams struct {
	cli.CommonFlags
	Type string
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON event content to canonical CBOR",
		Description: `Read a JSON (or JSONC) event, or bare content with --type, validate it
through the schema codec, and write its canonical CBOR encoding to
stdout.

The output is binary and deterministic: the same content always
produces the same bytes. output.format from the config does not apply;
pass --format diag to print diagnostic notation instead.`,
		Usage: "mxtypes content encode [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			params.AddFlags(flagSet, true)
			flagSet.StringVarP(&params.Type, "type", "t", "", "event type of bare content (default: input is a full event)")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Encode an event fixture",
				Command:     "mxtypes content encode event.jsonc > event.cbor",
			},
			{
				Description: "Round-trip: encode then decode",
				Command:     "mxtypes content encode event.json | mxtypes content decode",
			},
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("encode takes at most one file argument, got %d", len(args))
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if params.Format == "" {
				params.Format = config.FormatCBOR
			}
			if params.Format == config.FormatCBOR && term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("refusing to write binary CBOR to a terminal; redirect stdout or use --format diag")
			}
			session, err := params.Open(os.Stdout, "content/encode")
			if err != nil {
				return err
			}
			return runEncode(session, os.Stdin, path, params)
		},
	}
}

func runEncode(session *cli.Session, stdin io.Reader, path string, params encodeParams) error {
	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}
	format, data, err := prepareInput(data, inputJSON, false)
	if err != nil {
		return err
	}
	document, err := decodeDocument(format, data, params.Type, session.Logger)
	if err != nil {
		return err
	}
	return session.Output.Value(document)
}
