// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// MessageEventContent is the content of an m.message event: a text
// message.
type MessageEventContent struct {
	Message   MessageContent
	RelatesTo Relation
}

// PlainMessageEventContent returns a plain-text message.
func PlainMessageEventContent(body string) MessageEventContent {
	return MessageEventContent{Message: PlainMessage(body)}
}

// HTMLMessageEventContent returns an HTML message with a plain-text
// fallback.
func HTMLMessageEventContent(plain, html string) MessageEventContent {
	return MessageEventContent{Message: HTMLMessage(plain, html)}
}

// EventType returns "m.message".
func (MessageEventContent) EventType() ref.EventType { return EventTypeMessage }

func (MessageEventContent) isEventContent() {}

func (c *MessageEventContent) slots() []slot {
	return []slot{
		required(&c.Message),
		optional(relationFacet{&c.RelatesTo}),
	}
}

func (c *MessageEventContent) decode(format codec.Format, data []byte) error {
	var decoded MessageEventContent
	if err := decodeContent(format, EventTypeMessage, data, decoded.slots()...); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c MessageEventContent) MarshalJSON() ([]byte, error) {
	return encodeContent(codec.JSON, c.slots()...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *MessageEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c MessageEventContent) MarshalCBOR() ([]byte, error) {
	return encodeContent(codec.CBOR, c.slots()...)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *MessageEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }

// NoticeEventContent is the content of an m.notice event: an automated
// message, typically from a bot, that clients should not answer
// automatically.
type NoticeEventContent struct {
	Message   MessageContent
	RelatesTo Relation
}

// PlainNoticeEventContent returns a plain-text notice.
func PlainNoticeEventContent(body string) NoticeEventContent {
	return NoticeEventContent{Message: PlainMessage(body)}
}

// HTMLNoticeEventContent returns an HTML notice with a plain-text
// fallback.
func HTMLNoticeEventContent(plain, html string) NoticeEventContent {
	return NoticeEventContent{Message: HTMLMessage(plain, html)}
}

// EventType returns "m.notice".
func (NoticeEventContent) EventType() ref.EventType { return EventTypeNotice }

func (NoticeEventContent) isEventContent() {}

func (c *NoticeEventContent) slots() []slot {
	return []slot{
		required(&c.Message),
		optional(relationFacet{&c.RelatesTo}),
	}
}

func (c *NoticeEventContent) decode(format codec.Format, data []byte) error {
	var decoded NoticeEventContent
	if err := decodeContent(format, EventTypeNotice, data, decoded.slots()...); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c NoticeEventContent) MarshalJSON() ([]byte, error) {
	return encodeContent(codec.JSON, c.slots()...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *NoticeEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c NoticeEventContent) MarshalCBOR() ([]byte, error) {
	return encodeContent(codec.CBOR, c.slots()...)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *NoticeEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }

// EmoteEventContent is the content of an m.emote event: an action
// performed by the sender, rendered like "* alice waves".
type EmoteEventContent struct {
	Message   MessageContent
	RelatesTo Relation
}

// PlainEmoteEventContent returns a plain-text emote.
func PlainEmoteEventContent(body string) EmoteEventContent {
	return EmoteEventContent{Message: PlainMessage(body)}
}

// HTMLEmoteEventContent returns an HTML emote with a plain-text
// fallback.
func HTMLEmoteEventContent(plain, html string) EmoteEventContent {
	return EmoteEventContent{Message: HTMLMessage(plain, html)}
}

// EventType returns "m.emote".
func (EmoteEventContent) EventType() ref.EventType { return EventTypeEmote }

func (EmoteEventContent) isEventContent() {}

func (c *EmoteEventContent) slots() []slot {
	return []slot{
		required(&c.Message),
		optional(relationFacet{&c.RelatesTo}),
	}
}

func (c *EmoteEventContent) decode(format codec.Format, data []byte) error {
	var decoded EmoteEventContent
	if err := decodeContent(format, EventTypeEmote, data, decoded.slots()...); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c EmoteEventContent) MarshalJSON() ([]byte, error) {
	return encodeContent(codec.JSON, c.slots()...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EmoteEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c EmoteEventContent) MarshalCBOR() ([]byte, error) {
	return encodeContent(codec.CBOR, c.slots()...)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *EmoteEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }

// FileEventContent is the content of an m.file event: an uploaded file
// with a text description for clients that cannot show it.
type FileEventContent struct {
	Message   MessageContent
	File      FileContent
	RelatesTo Relation
}

// PlainFileEventContent returns file content with a plain-text
// description.
func PlainFileEventContent(body string, file FileContent) FileEventContent {
	return FileEventContent{Message: PlainMessage(body), File: file}
}

// NewFileEventContent returns file content with the given description.
func NewFileEventContent(message MessageContent, file FileContent) FileEventContent {
	return FileEventContent{Message: message, File: file}
}

// EventType returns "m.file".
func (FileEventContent) EventType() ref.EventType { return EventTypeFile }

func (FileEventContent) isEventContent() {}

func (c *FileEventContent) slots() []slot {
	return []slot{
		required(&c.Message),
		required(&c.File),
		optional(relationFacet{&c.RelatesTo}),
	}
}

func (c *FileEventContent) decode(format codec.Format, data []byte) error {
	var decoded FileEventContent
	if err := decodeContent(format, EventTypeFile, data, decoded.slots()...); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c FileEventContent) MarshalJSON() ([]byte, error) {
	return encodeContent(codec.JSON, c.slots()...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *FileEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c FileEventContent) MarshalCBOR() ([]byte, error) {
	return encodeContent(codec.CBOR, c.slots()...)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *FileEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }

// ImageEventContent is the content of an m.image event: an uploaded
// image with its dimensions, optional previews and an optional caption.
// The image facet is always written, as {} when no dimension is known.
type ImageEventContent struct {
	Message   MessageContent
	File      FileContent
	Image     ImageContent
	Thumbnail Thumbnails
	Caption   Captions
	RelatesTo Relation
}

// PlainImageEventContent returns image content with a plain-text
// description and no dimensions.
func PlainImageEventContent(body string, file FileContent) ImageEventContent {
	return ImageEventContent{Message: PlainMessage(body), File: file}
}

// NewImageEventContent returns image content with the given
// description and no dimensions.
func NewImageEventContent(message MessageContent, file FileContent) ImageEventContent {
	return ImageEventContent{Message: message, File: file}
}

// EventType returns "m.image".
func (ImageEventContent) EventType() ref.EventType { return EventTypeImage }

func (ImageEventContent) isEventContent() {}

func (c *ImageEventContent) slots() []slot {
	return []slot{
		required(&c.Message),
		required(&c.File),
		required(&c.Image),
		optional(&c.Thumbnail),
		optional(&c.Caption),
		optional(relationFacet{&c.RelatesTo}),
	}
}

func (c *ImageEventContent) decode(format codec.Format, data []byte) error {
	var decoded ImageEventContent
	if err := decodeContent(format, EventTypeImage, data, decoded.slots()...); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c ImageEventContent) MarshalJSON() ([]byte, error) {
	return encodeContent(codec.JSON, c.slots()...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ImageEventContent) UnmarshalJSON(data []byte) error { return c.decode(codec.JSON, data) }

// MarshalCBOR implements cbor.Marshaler.
func (c ImageEventContent) MarshalCBOR() ([]byte, error) {
	return encodeContent(codec.CBOR, c.slots()...)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *ImageEventContent) UnmarshalCBOR(data []byte) error { return c.decode(codec.CBOR, data) }
