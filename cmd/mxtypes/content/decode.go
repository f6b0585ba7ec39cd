// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
)

type decodeParams struct {
	cli.CommonFlags
	Type  string
	Input string
	Hex   bool
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode an event or content and print it",
		Description: `Read an event (or bare content with --type) from a file or stdin,
decode it through the schema codec, and print the result.

The input format is detected from the first byte unless --input is
given: '{' or a comment means JSON, anything else CBOR. JSON may contain
comments and trailing commas.

The output format comes from --format, or output.format in the config
(default json). JSON and YAML are colored on a terminal.`,
		Usage: "mxtypes content decode [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			params.AddFlags(flagSet, true)
			flagSet.StringVarP(&params.Type, "type", "t", "", "event type of bare content (default: input is a full event)")
			flagSet.StringVar(&params.Input, "input", inputAuto, "input format: auto, json, cbor")
			flagSet.BoolVarP(&params.Hex, "hex", "x", false, "treat input as hex-encoded CBOR")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Pretty-print and validate an event",
				Command:     "mxtypes content decode event.json",
			},
			{
				Description: "Show the CBOR structure of bare content",
				Command:     "mxtypes content decode --type m.file -f diag file.cbor",
			},
			{
				Description: "Decode hex-encoded CBOR from a log line",
				Command:     "echo 'a1 78 17 ...' | mxtypes content decode --hex --type m.message",
			},
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("decode takes at most one file argument, got %d", len(args))
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			session, err := params.Open(os.Stdout, "content/decode")
			if err != nil {
				return err
			}
			return runDecode(session, os.Stdin, path, params)
		},
	}
}

func runDecode(session *cli.Session, stdin io.Reader, path string, params decodeParams) error {
	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}
	format, data, err := prepareInput(data, params.Input, params.Hex)
	if err != nil {
		return err
	}
	document, err := decodeDocument(format, data, params.Type, session.Logger)
	if err != nil {
		return err
	}
	return session.Output.Value(document)
}
