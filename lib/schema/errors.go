// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "errors"

var (
	// ErrMalformedContent is returned when content or one of its
	// facets is present but cannot be read: wrong shape, a missing
	// required field, or an invalid identifier inside it. Identifier
	// errors from lib/ref stay matchable through the same chain.
	// Encoding returns it for values that could not be read back, such
	// as a file without a URL or a reply to a zero event ID.
	ErrMalformedContent = errors.New("malformed event content")

	// ErrMissingMandatoryFacet is returned when every facet present
	// is well-formed but at least one required facet is absent. The
	// error message names all missing facets.
	ErrMissingMandatoryFacet = errors.New("missing mandatory facet")

	// ErrMalformedEvent is returned when an event envelope lacks a
	// required field or carries one of the wrong shape. Errors inside
	// the content object use the content errors above instead.
	ErrMalformedEvent = errors.New("malformed event")
)
