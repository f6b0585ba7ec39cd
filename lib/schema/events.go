// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// Extensible message-like event types.
const (
	// EventTypeMessage is a text message. Required facet: message.
	EventTypeMessage ref.EventType = "m.message"

	// EventTypeNotice is an automated text message. Required facet:
	// message.
	EventTypeNotice ref.EventType = "m.notice"

	// EventTypeEmote is an action performed by the sender. Required
	// facet: message.
	EventTypeEmote ref.EventType = "m.emote"

	// EventTypeFile is an uploaded file. Required facets: message,
	// file.
	EventTypeFile ref.EventType = "m.file"

	// EventTypeImage is an uploaded image. Required facets: message,
	// file, image. Optional: thumbnail, caption.
	EventTypeImage ref.EventType = "m.image"
)

// EventContent is the content of a message-like event. The set of
// implementations is closed: MessageEventContent, NoticeEventContent,
// EmoteEventContent, FileEventContent, ImageEventContent and
// CustomEventContent. Use a type switch to handle each kind.
//
// Every implementation encodes to JSON through encoding/json and to
// CBOR through lib/codec.
type EventContent interface {
	// EventType returns the event type this content belongs to.
	EventType() ref.EventType

	isEventContent()
}

// DecodeContent decodes content for the given event type. Known types
// produce their specific content type and enforce its mandatory
// facets. Any other type produces CustomEventContent.
func DecodeContent(format codec.Format, eventType ref.EventType, data []byte) (EventContent, error) {
	switch eventType {
	case EventTypeMessage:
		var content MessageEventContent
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	case EventTypeNotice:
		var content NoticeEventContent
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	case EventTypeEmote:
		var content EmoteEventContent
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	case EventTypeFile:
		var content FileEventContent
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	case EventTypeImage:
		var content ImageEventContent
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	default:
		content := CustomEventContent{Type: eventType}
		if err := content.decode(format, data); err != nil {
			return nil, err
		}
		return content, nil
	}
}

// EncodeContent encodes content in the given format.
func EncodeContent(format codec.Format, content EventContent) ([]byte, error) {
	if content == nil {
		return nil, fmt.Errorf("encode content: nil content")
	}
	return format.Marshal(content)
}

// CustomEventContent is the content of an event type this package does
// not model. Fields holds the decoded object as generic values: maps,
// slices, strings, booleans, nil, and numbers as int64, uint64 or
// float64.
type CustomEventContent struct {
	Type   ref.EventType
	Fields map[string]any
}

// EventType returns the type the content was decoded for.
func (c CustomEventContent) EventType() ref.EventType { return c.Type }

func (CustomEventContent) isEventContent() {}

func (c CustomEventContent) fields() map[string]any {
	if c.Fields == nil {
		return map[string]any{}
	}
	return c.Fields
}

// decode keeps c.Type and replaces c.Fields.
func (c *CustomEventContent) decode(format codec.Format, data []byte) error {
	var fields map[string]any
	switch format {
	case codec.JSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&fields); err != nil {
			return fmt.Errorf("%s: %w: %w", c.Type, ErrMalformedContent, err)
		}
		if decoder.More() {
			return fmt.Errorf("%s: %w: trailing data after object", c.Type, ErrMalformedContent)
		}
	default:
		if err := format.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("%s: %w: %w", c.Type, ErrMalformedContent, err)
		}
	}
	if fields == nil {
		return fmt.Errorf("%s: %w: content is null", c.Type, ErrMalformedContent)
	}
	c.Fields = normalizeNumbers(fields).(map[string]any)
	return nil
}

// normalizeNumbers replaces json.Number values with int64, uint64 or
// float64, so that integers decoded from JSON stay integers when
// re-encoded as CBOR.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	default:
		return value
	}
}

// MarshalJSON implements json.Marshaler.
func (c CustomEventContent) MarshalJSON() ([]byte, error) { return json.Marshal(c.fields()) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *CustomEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c CustomEventContent) MarshalCBOR() ([]byte, error) { return codec.Marshal(c.fields()) }

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *CustomEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }
