// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// Identifier kinds accepted by "id parse".
const (
	kindRoom   = "room"
	kindAlias  = "alias"
	kindUser   = "user"
	kindEvent  = "event"
	kindServer = "server"
	kindMxc    = "mxc"
)

var kinds = []string{kindRoom, kindAlias, kindUser, kindEvent, kindServer, kindMxc}

// errorKinds names each ref validation failure for scripts. More
// specific failures come first: an mxc URI with a bad server matches
// both ErrInvalidServerName and ErrInvalidMxcURI.
var errorKinds = []struct {
	err  error
	name string
}{
	{ref.ErrMissingLeadingSigil, "missing_leading_sigil"},
	{ref.ErrMaximumLengthExceeded, "maximum_length_exceeded"},
	{ref.ErrMissingDelimiter, "missing_delimiter"},
	{ref.ErrInvalidServerName, "invalid_server_name"},
	{ref.ErrInvalidCharacters, "invalid_characters"},
	{ref.ErrInvalidMxcURI, "invalid_mxc_uri"},
}

type parseParams struct {
	cli.CommonFlags
	JSON bool
}

func parseCommand() *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Validate an identifier and print its components",
		Description: `Parse text as the given identifier kind and print its components.

Kinds: room, alias, user, event, server, mxc.

On invalid input, prints the failure kind and exits 1. With --json, a
failure is reported as {"valid": false, "error": "<kind>", ...} on
stdout instead.`,
		Usage: "mxtypes id parse <kind> <text> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("parse", pflag.ContinueOnError)
			params.AddFlags(flagSet, false)
			flagSet.BoolVar(&params.JSON, "json", false, "output as JSON")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Inspect a server name with a port",
				Command:     "mxtypes id parse server '[1234:5678::abcd]:5678'",
			},
			{
				Description: "Check a legacy user ID",
				Command:     "mxtypes id parse user '@Alice:example.com' --json",
			},
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("parse requires <kind> and <text>, got %d arguments", len(args))
			}
			session, err := params.Open(os.Stdout, "id/parse")
			if err != nil {
				return err
			}
			return runParse(session, os.Stderr, args[0], args[1], params.JSON)
		},
	}
}

// parsedIdentifier is the --json form of a valid identifier.
type parsedIdentifier struct {
	Valid      bool    `json:"valid"`
	Kind       string  `json:"kind"`
	ID         string  `json:"id"`
	Localpart  *string `json:"localpart,omitempty"`
	Server     string  `json:"server,omitempty"`
	Host       string  `json:"host,omitempty"`
	Port       *uint16 `json:"port,omitempty"`
	IPLiteral  bool    `json:"ip_literal,omitempty"`
	Historical bool    `json:"historical,omitempty"`
	MediaID    string  `json:"media_id,omitempty"`
	MatrixTo   string  `json:"matrix_to,omitempty"`
}

// invalidIdentifier is the --json form of a rejected identifier.
type invalidIdentifier struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind"`
	Input   string `json:"input"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func runParse(session *cli.Session, stderr io.Writer, kind, text string, asJSON bool) error {
	parsed, err := parseIdentifier(kind, text)
	if err == nil {
		if asJSON {
			return session.Output.JSON(parsed)
		}
		return session.Output.Fields(parsed.fields())
	}

	failure := errorKind(err)
	if failure == "" {
		// Not a validation failure (unknown kind).
		return err
	}
	session.Logger.Debug("identifier rejected", "kind", kind, "input", text, "error", err)
	if asJSON {
		if err := session.Output.JSON(invalidIdentifier{
			Kind:    kind,
			Input:   text,
			Error:   failure,
			Message: err.Error(),
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(stderr, "invalid %s (%s): %v\n", kind, failure, err)
	}
	return &cli.ExitError{Code: 1}
}

func parseIdentifier(kind, text string) (parsedIdentifier, error) {
	result := parsedIdentifier{Valid: true, Kind: kind, ID: text}

	switch kind {
	case kindRoom:
		room, err := ref.ParseRoomID(text)
		if err != nil {
			return result, err
		}
		result.setLocalpart(room.Localpart())
		result.setServer(room.ServerName())
		result.MatrixTo = room.MatrixToURL().String()
	case kindAlias:
		alias, err := ref.ParseRoomAlias(text)
		if err != nil {
			return result, err
		}
		result.setLocalpart(alias.Localpart())
		result.setServer(alias.ServerName())
		result.MatrixTo = alias.MatrixToURL().String()
	case kindUser:
		user, err := ref.ParseUserID(text)
		if err != nil {
			return result, err
		}
		result.setLocalpart(user.Localpart())
		result.setServer(user.ServerName())
		result.Historical = user.IsHistorical()
		result.MatrixTo = user.MatrixToURL().String()
	case kindEvent:
		event, err := ref.ParseEventID(text)
		if err != nil {
			return result, err
		}
		result.setLocalpart(event.Localpart())
		if server, ok := event.ServerName(); ok {
			result.setServer(server)
		}
	case kindServer:
		server, err := ref.ParseServerName(text)
		if err != nil {
			return result, err
		}
		result.setServer(server)
	case kindMxc:
		uri, err := ref.ParseMxcURI(text)
		if err != nil {
			return result, err
		}
		result.setServer(uri.ServerName())
		result.MediaID = uri.MediaID()
	default:
		return result, fmt.Errorf("unknown identifier kind %q (expected one of %v)", kind, kinds)
	}
	return result, nil
}

func (p *parsedIdentifier) setLocalpart(localpart string) {
	p.Localpart = &localpart
}

func (p *parsedIdentifier) setServer(server ref.ServerName) {
	p.Server = server.String()
	p.Host = server.Host()
	if port, ok := server.Port(); ok {
		p.Port = &port
	}
	p.IPLiteral = server.IsIPLiteral()
}

func (p parsedIdentifier) fields() []cli.Field {
	fields := []cli.Field{
		{Key: "kind", Value: p.Kind},
		{Key: "id", Value: p.ID},
	}
	if p.Localpart != nil {
		fields = append(fields, cli.Field{Key: "localpart", Value: *p.Localpart})
	}
	if p.Server != "" {
		fields = append(fields,
			cli.Field{Key: "server", Value: p.Server},
			cli.Field{Key: "host", Value: p.Host},
		)
		if p.Port != nil {
			fields = append(fields, cli.Field{Key: "port", Value: strconv.Itoa(int(*p.Port))})
		}
		if p.IPLiteral {
			fields = append(fields, cli.Field{Key: "ip literal", Value: "yes"})
		}
	}
	if p.Kind == kindUser {
		fields = append(fields, cli.Field{Key: "historical", Value: strconv.FormatBool(p.Historical)})
	}
	if p.MediaID != "" {
		fields = append(fields, cli.Field{Key: "media id", Value: p.MediaID})
	}
	if p.MatrixTo != "" {
		fields = append(fields, cli.Field{Key: "matrix.to", Value: p.MatrixTo})
	}
	return fields
}

// errorKind returns the script-facing name of a ref validation failure,
// or "" when err is not one.
func errorKind(err error) string {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return ""
}
