// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// Top-level content keys.
const (
	keyText      = "org.matrix.msc1767.text"
	keyHTML      = "org.matrix.msc1767.html"
	keyMessage   = "org.matrix.msc1767.message"
	keyFile      = "org.matrix.msc1767.file"
	keyImage     = "org.matrix.msc1767.image"
	keyThumbnail = "org.matrix.msc1767.thumbnail"
	keyCaption   = "org.matrix.msc1767.caption"
	keyRelatesTo = "m.relates_to"
)

// contentWriter accumulates the top-level entries of a content object.
// Values must encode identically through encoding/json and lib/codec.
type contentWriter map[string]any

// contentReader holds the undecoded top-level entries of a content
// object in one wire format. A facet reads only the keys it owns.
type contentReader struct {
	format codec.Format
	fields map[string][]byte
}

func newContentReader(format codec.Format, data []byte) (*contentReader, error) {
	fields, err := format.DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: content is not an object: %w", ErrMalformedContent, err)
	}
	return &contentReader{format: format, fields: fields}, nil
}

// decode reads the entry at key into target. It reports false without
// touching target when the key is absent or null.
func (r *contentReader) decode(key string, target any) (bool, error) {
	raw, ok := r.fields[key]
	if !ok || r.format.IsNull(raw) {
		return false, nil
	}
	if err := r.format.Unmarshal(raw, target); err != nil {
		return true, fmt.Errorf("%w: %s: %w", ErrMalformedContent, key, err)
	}
	return true, nil
}

// facet is one self-contained piece of content. Each facet owns a
// fixed set of top-level keys, and reading or writing it never looks
// at keys owned by another facet.
type facet interface {
	// name is the key reported when the facet is missing.
	name() string

	// empty reports whether an optional facet would carry nothing and
	// should be left out of the encoded object.
	empty() bool

	// encodeFacet writes the facet into w. It fails for values that
	// would not decode again.
	encodeFacet(w contentWriter) error

	// decodeFacet reads the facet from r. It reports whether the
	// facet was present.
	decodeFacet(r *contentReader) (bool, error)
}

// slot places a facet in a content type.
type slot struct {
	facet    facet
	required bool
}

func required(f facet) slot { return slot{facet: f, required: true} }
func optional(f facet) slot { return slot{facet: f} }

// encodeContent writes every required facet and every non-empty
// optional facet into one flat object.
func encodeContent(format codec.Format, slots ...slot) ([]byte, error) {
	w := make(contentWriter, len(slots))
	for _, s := range slots {
		if !s.required && s.facet.empty() {
			continue
		}
		if err := s.facet.encodeFacet(w); err != nil {
			return nil, err
		}
	}
	return format.Marshal(map[string]any(w))
}

// decodeContent reads every facet from data. Malformed facets fail
// immediately. Required facets that turn out to be absent are reported
// together after all facets have been read.
func decodeContent(format codec.Format, eventType ref.EventType, data []byte, slots ...slot) error {
	r, err := newContentReader(format, data)
	if err != nil {
		return fmt.Errorf("%s: %w", eventType, err)
	}

	var missing []string
	for _, s := range slots {
		present, err := s.facet.decodeFacet(r)
		if err != nil {
			return fmt.Errorf("%s: %w", eventType, err)
		}
		if s.required && !present {
			missing = append(missing, s.facet.name())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", eventType, ErrMissingMandatoryFacet, strings.Join(missing, ", "))
	}
	return nil
}
