// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/config"
)

// highlightStyle is the Chroma style for JSON and YAML output.
const highlightStyle = "monokai"

// Output writes command results to a destination in one of the
// config.Format* formats.
type Output struct {
	writer  io.Writer
	format  string
	profile termenv.Profile
}

// Field is one line of a key/value listing.
type Field struct {
	Key   string
	Value string
}

// NewOutput creates an Output on w. color is one of config.Color*;
// "auto" follows the termenv profile of w (plain unless w is a
// terminal, honoring NO_COLOR and CLICOLOR_FORCE).
func NewOutput(w io.Writer, format, color string) *Output {
	return &Output{writer: w, format: format, profile: colorProfile(w, color)}
}

func colorProfile(w io.Writer, color string) termenv.Profile {
	switch color {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.ANSI256
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// Colored reports whether output carries ANSI styling.
func (o *Output) Colored() bool { return o.profile != termenv.Ascii }

// Value writes value in the configured format. value must marshal to
// both JSON and CBOR; YAML is produced from the CBOR data model so
// integers keep their type.
func (o *Output) Value(value any) error {
	switch o.format {
	case config.FormatJSON, "":
		return o.JSON(value)
	case config.FormatYAML:
		generic, err := genericValue(value)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return o.highlight(string(data), "yaml")
	case config.FormatCBOR:
		data, err := codec.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode CBOR: %w", err)
		}
		_, err = o.writer.Write(data)
		return err
	case config.FormatDiag:
		data, err := codec.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode CBOR: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnose CBOR: %w", err)
		}
		_, err = fmt.Fprintln(o.writer, notation)
		return err
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}

// JSON writes value as indented JSON regardless of the configured
// format.
func (o *Output) JSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return o.highlight(string(data)+"\n", "json")
}

// Line writes text followed by a newline, unstyled.
func (o *Output) Line(text string) error {
	_, err := fmt.Fprintln(o.writer, text)
	return err
}

// Fields writes an aligned key/value listing with styled keys.
func (o *Output) Fields(fields []Field) error {
	renderer := lipgloss.NewRenderer(o.writer, termenv.WithProfile(o.profile))
	// Without an explicit profile the renderer re-detects from the
	// environment.
	renderer.SetColorProfile(o.profile)

	width := 0
	for _, field := range fields {
		width = max(width, len(field.Key)+1)
	}
	keyStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Width(width)

	for _, field := range fields {
		if _, err := fmt.Fprintf(o.writer, "%s  %s\n", keyStyle.Render(field.Key+":"), field.Value); err != nil {
			return err
		}
	}
	return nil
}

func (o *Output) highlight(text, lexer string) error {
	if o.profile == termenv.Ascii {
		_, err := io.WriteString(o.writer, text)
		return err
	}
	if err := quick.Highlight(o.writer, text, lexer, terminalFormatter(o.profile), highlightStyle); err != nil {
		_, err = io.WriteString(o.writer, text)
		return err
	}
	return nil
}

func terminalFormatter(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	default:
		return "terminal16"
	}
}

// genericValue converts value to plain maps, slices and scalars by
// way of its CBOR encoding.
func genericValue(value any) (any, error) {
	data, err := codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode CBOR: %w", err)
	}
	var generic any
	if err := codec.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decode CBOR: %w", err)
	}
	return generic, nil
}
