// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// Timestamp is a point in time as milliseconds since the Unix epoch,
// the representation Matrix uses for origin_server_ts.
type Timestamp uint64

// TimestampOf converts t to a Timestamp, truncating to milliseconds.
// Times before the epoch become 0.
func TimestampOf(t time.Time) Timestamp {
	milliseconds := t.UnixMilli()
	if milliseconds < 0 {
		return 0
	}
	return Timestamp(milliseconds)
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// EventUnsigned is the unsigned data a homeserver attaches to an event.
type EventUnsigned struct {
	// Age is the time in milliseconds since the event was sent, as
	// measured by the homeserver delivering it.
	Age int64 `json:"age,omitempty"`

	// TransactionID is the client transaction ID, present only for
	// the client that sent the event.
	TransactionID string `json:"transaction_id,omitempty"`
}

// IsEmpty reports whether no unsigned data is set.
func (u EventUnsigned) IsEmpty() bool { return u == EventUnsigned{} }

// MessageLikeEvent is a message-like event as delivered to clients: an
// envelope around one EventContent. The "type" field is not stored; it
// comes from Content.EventType().
type MessageLikeEvent struct {
	Content        EventContent
	EventID        ref.EventID
	Sender         ref.UserID
	OriginServerTS Timestamp
	RoomID         ref.RoomID
	Unsigned       EventUnsigned
}

// Type returns the event type, or "" when Content is nil.
func (e MessageLikeEvent) Type() ref.EventType {
	if e.Content == nil {
		return ""
	}
	return e.Content.EventType()
}

type eventWire struct {
	Content        EventContent   `json:"content"`
	EventID        ref.EventID    `json:"event_id"`
	OriginServerTS Timestamp      `json:"origin_server_ts"`
	RoomID         ref.RoomID     `json:"room_id"`
	Sender         ref.UserID     `json:"sender"`
	Type           ref.EventType  `json:"type"`
	Unsigned       *EventUnsigned `json:"unsigned,omitempty"`
}

func (e MessageLikeEvent) encode(format codec.Format) ([]byte, error) {
	if e.Content == nil {
		return nil, fmt.Errorf("encode event %s: nil content", e.EventID)
	}
	var missing []string
	for _, field := range []struct {
		key  string
		zero bool
	}{
		{"event_id", e.EventID.IsZero()},
		{"sender", e.Sender.IsZero()},
		{"room_id", e.RoomID.IsZero()},
	} {
		if field.zero {
			missing = append(missing, field.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedEvent, strings.Join(missing, ", "))
	}
	wire := eventWire{
		Content:        e.Content,
		EventID:        e.EventID,
		OriginServerTS: e.OriginServerTS,
		RoomID:         e.RoomID,
		Sender:         e.Sender,
		Type:           e.Content.EventType(),
	}
	if !e.Unsigned.IsEmpty() {
		unsigned := e.Unsigned
		wire.Unsigned = &unsigned
	}
	return format.Marshal(wire)
}

// decode reads the envelope first, then decodes the content for the
// envelope's type. An empty type or identifier counts as missing.
func (e *MessageLikeEvent) decode(format codec.Format, data []byte) error {
	fields, err := format.DecodeObject(data)
	if err != nil {
		return fmt.Errorf("%w: event is not an object: %w", ErrMalformedEvent, err)
	}

	var (
		decoded   MessageLikeEvent
		eventType ref.EventType
		missing   []string
	)
	envelope := []struct {
		key    string
		target any
		zero   func() bool
	}{
		{"type", &eventType, func() bool { return eventType == "" }},
		{"event_id", &decoded.EventID, func() bool { return decoded.EventID.IsZero() }},
		{"sender", &decoded.Sender, func() bool { return decoded.Sender.IsZero() }},
		{"origin_server_ts", &decoded.OriginServerTS, nil},
		{"room_id", &decoded.RoomID, func() bool { return decoded.RoomID.IsZero() }},
	}
	for _, field := range envelope {
		raw, ok := fields[field.key]
		if !ok || format.IsNull(raw) {
			missing = append(missing, field.key)
			continue
		}
		if err := format.Unmarshal(raw, field.target); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformedEvent, field.key, err)
		}
		if field.zero != nil && field.zero() {
			missing = append(missing, field.key)
		}
	}
	rawContent, ok := fields["content"]
	if !ok || format.IsNull(rawContent) {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedEvent, strings.Join(missing, ", "))
	}

	if raw, ok := fields["unsigned"]; ok && !format.IsNull(raw) {
		if err := format.Unmarshal(raw, &decoded.Unsigned); err != nil {
			return fmt.Errorf("%w: unsigned: %w", ErrMalformedEvent, err)
		}
	}

	decoded.Content, err = DecodeContent(format, eventType, rawContent)
	if err != nil {
		return fmt.Errorf("event %s: %w", decoded.EventID, err)
	}
	*e = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e MessageLikeEvent) MarshalJSON() ([]byte, error) { return e.encode(codec.JSON) }

// UnmarshalJSON implements json.Unmarshaler.
func (e *MessageLikeEvent) UnmarshalJSON(data []byte) error { return e.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (e MessageLikeEvent) MarshalCBOR() ([]byte, error) { return e.encode(codec.CBOR) }

// UnmarshalCBOR implements cbor.Unmarshaler.
func (e *MessageLikeEvent) UnmarshalCBOR(data []byte) error { return e.decode(codec.CBOR, data) }
