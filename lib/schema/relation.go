// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// RelationTypeThread is the rel_type of a thread relation.
const RelationTypeThread = "m.thread"

// Relation is the relation facet ("m.relates_to"). It is one of Reply,
// Thread or CustomRelation. A nil Relation means the content relates to
// nothing.
type Relation interface {
	// RelationType returns the wire rel_type, or "" for a reply.
	RelationType() string

	// relationWire builds the wire form. It fails when a required
	// event ID is zero. Unexported to keep the set of relation kinds
	// closed.
	relationWire() (relatesToWire, error)
}

// Reply marks content as a reply to another event.
type Reply struct {
	InReplyTo ref.EventID
}

// RelationType returns "": replies have no rel_type.
func (Reply) RelationType() string { return "" }

func (r Reply) relationWire() (relatesToWire, error) {
	if r.InReplyTo.IsZero() {
		return relatesToWire{}, fmt.Errorf("%w: %s: reply without event_id", ErrMalformedContent, keyRelatesTo)
	}
	return relatesToWire{InReplyTo: &inReplyToWire{EventID: r.InReplyTo}}, nil
}

// Thread places content in the thread rooted at EventID.
type Thread struct {
	// EventID is the thread root.
	EventID ref.EventID

	// InReplyTo is the event this one responds to within the thread.
	// For a message that is not a real reply, clients set it to the
	// latest thread event and set IsFallingBack. Zero when absent.
	InReplyTo ref.EventID

	// IsFallingBack reports that InReplyTo is only a fallback for
	// clients without thread support.
	IsFallingBack bool
}

// RelationType returns "m.thread".
func (Thread) RelationType() string { return RelationTypeThread }

func (t Thread) relationWire() (relatesToWire, error) {
	if t.EventID.IsZero() {
		return relatesToWire{}, fmt.Errorf("%w: %s: thread relation without event_id", ErrMalformedContent, keyRelatesTo)
	}
	eventID := t.EventID
	wire := relatesToWire{
		RelType:       RelationTypeThread,
		EventID:       &eventID,
		IsFallingBack: t.IsFallingBack,
	}
	if !t.InReplyTo.IsZero() {
		wire.InReplyTo = &inReplyToWire{EventID: t.InReplyTo}
	}
	return wire, nil
}

// CustomRelation is any relation with a rel_type this package does not
// model.
type CustomRelation struct {
	RelType string
	EventID ref.EventID
}

// RelationType returns the custom rel_type.
func (c CustomRelation) RelationType() string { return c.RelType }

// relationWire rejects an empty or "m.thread" RelType as well as a
// zero EventID: neither would read back as the same CustomRelation.
func (c CustomRelation) relationWire() (relatesToWire, error) {
	switch {
	case c.RelType == "" || c.RelType == RelationTypeThread:
		return relatesToWire{}, fmt.Errorf("%w: %s: custom relation with rel_type %q", ErrMalformedContent, keyRelatesTo, c.RelType)
	case c.EventID.IsZero():
		return relatesToWire{}, fmt.Errorf("%w: %s: %s relation without event_id", ErrMalformedContent, keyRelatesTo, c.RelType)
	}
	eventID := c.EventID
	return relatesToWire{RelType: c.RelType, EventID: &eventID}, nil
}

type relatesToWire struct {
	RelType       string         `json:"rel_type,omitempty"`
	EventID       *ref.EventID   `json:"event_id,omitempty"`
	IsFallingBack bool           `json:"is_falling_back,omitempty"`
	InReplyTo     *inReplyToWire `json:"m.in_reply_to,omitempty"`
}

type inReplyToWire struct {
	EventID ref.EventID `json:"event_id"`
}

// relation resolves the wire form. A thread rel_type wins over a bare
// m.in_reply_to; other rel_types become CustomRelation.
func (w relatesToWire) relation() (Relation, error) {
	switch {
	case w.RelType == RelationTypeThread:
		if w.EventID == nil || w.EventID.IsZero() {
			return nil, fmt.Errorf("%w: %s: thread relation without event_id", ErrMalformedContent, keyRelatesTo)
		}
		thread := Thread{EventID: *w.EventID, IsFallingBack: w.IsFallingBack}
		if w.InReplyTo != nil {
			thread.InReplyTo = w.InReplyTo.EventID
		}
		return thread, nil
	case w.RelType != "":
		if w.EventID == nil || w.EventID.IsZero() {
			return nil, fmt.Errorf("%w: %s: %s relation without event_id", ErrMalformedContent, keyRelatesTo, w.RelType)
		}
		return CustomRelation{RelType: w.RelType, EventID: *w.EventID}, nil
	case w.InReplyTo != nil:
		if w.InReplyTo.EventID.IsZero() {
			return nil, fmt.Errorf("%w: %s: m.in_reply_to without event_id", ErrMalformedContent, keyRelatesTo)
		}
		return Reply{InReplyTo: w.InReplyTo.EventID}, nil
	default:
		return nil, fmt.Errorf("%w: %s: neither rel_type nor m.in_reply_to", ErrMalformedContent, keyRelatesTo)
	}
}

// relationFacet adapts a content type's Relation field to the facet
// interface.
type relationFacet struct {
	target *Relation
}

func (f relationFacet) name() string { return keyRelatesTo }

func (f relationFacet) empty() bool { return *f.target == nil }

func (f relationFacet) encodeFacet(w contentWriter) error {
	if *f.target == nil {
		return nil
	}
	wire, err := (*f.target).relationWire()
	if err != nil {
		return err
	}
	w[keyRelatesTo] = wire
	return nil
}

func (f relationFacet) decodeFacet(r *contentReader) (bool, error) {
	var wire relatesToWire
	present, err := r.decode(keyRelatesTo, &wire)
	if err != nil || !present {
		return present, err
	}
	relation, err := wire.relation()
	if err != nil {
		return true, err
	}
	*f.target = relation
	return true, nil
}
