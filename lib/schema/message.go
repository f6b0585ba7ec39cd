// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
)

// MIME types recognized by the text helpers.
const (
	MimeTypePlain = "text/plain"
	MimeTypeHTML  = "text/html"
)

// Text is one representation of a message body.
type Text struct {
	// Body is the content in the representation named by MimeType.
	Body string `json:"body"`

	// MimeType defaults to "text/plain" when absent from the wire.
	MimeType string `json:"mimetype"`
}

// PlainText returns a text/plain representation.
func PlainText(body string) Text { return Text{Body: body, MimeType: MimeTypePlain} }

// HTMLText returns a text/html representation.
func HTMLText(body string) Text { return Text{Body: body, MimeType: MimeTypeHTML} }

// textWire distinguishes an absent mimetype (which defaults to plain
// text) from an explicit one.
type textWire struct {
	Body     *string `json:"body"`
	MimeType *string `json:"mimetype"`
}

// MessageContent is the text facet: an ordered list of representations
// of the same message, preferred representation first. Clients pick the
// first representation they can render.
type MessageContent []Text

// PlainMessage returns message content with a single plain-text
// representation.
func PlainMessage(body string) MessageContent {
	return MessageContent{PlainText(body)}
}

// HTMLMessage returns message content with an HTML representation
// followed by its plain-text fallback.
func HTMLMessage(plain, html string) MessageContent {
	return MessageContent{HTMLText(html), PlainText(plain)}
}

// FindPlain returns the body of the first text/plain representation.
func (m MessageContent) FindPlain() (string, bool) { return findText(m, MimeTypePlain) }

// FindHTML returns the body of the first text/html representation.
func (m MessageContent) FindHTML() (string, bool) { return findText(m, MimeTypeHTML) }

func (m *MessageContent) name() string { return keyMessage }

func (m *MessageContent) empty() bool { return len(*m) == 0 }

// encodeFacet uses the "org.matrix.msc1767.text" shorthand for a lone
// plain-text representation and the full list otherwise.
func (m *MessageContent) encodeFacet(w contentWriter) error {
	if len(*m) == 1 && (*m)[0].MimeType == MimeTypePlain {
		w[keyText] = (*m)[0].Body
		return nil
	}
	w[keyMessage] = textList(*m)
	return nil
}

// decodeFacet prefers the full list. Without it, the html and text
// shorthands combine into [html, plain], omitting whichever is absent.
func (m *MessageContent) decodeFacet(r *contentReader) (bool, error) {
	list, present, err := readTextList(r, keyMessage)
	if err != nil || present {
		*m = list
		return present, err
	}

	var html, plain string
	hasHTML, err := r.decode(keyHTML, &html)
	if err != nil {
		return true, err
	}
	hasPlain, err := r.decode(keyText, &plain)
	if err != nil {
		return true, err
	}
	if !hasHTML && !hasPlain {
		return false, nil
	}

	var content MessageContent
	if hasHTML {
		content = append(content, HTMLText(html))
	}
	if hasPlain {
		content = append(content, PlainText(plain))
	}
	*m = content
	return true, nil
}

// Captions is the caption facet for media. It has the same shape as
// MessageContent but is always written as a full list.
type Captions []Text

// PlainCaption returns a caption with a single plain-text
// representation.
func PlainCaption(body string) Captions {
	return Captions{PlainText(body)}
}

// HTMLCaption returns a caption with an HTML representation followed by
// its plain-text fallback.
func HTMLCaption(plain, html string) Captions {
	return Captions{HTMLText(html), PlainText(plain)}
}

// FindPlain returns the body of the first text/plain representation.
func (c Captions) FindPlain() (string, bool) { return findText(c, MimeTypePlain) }

// FindHTML returns the body of the first text/html representation.
func (c Captions) FindHTML() (string, bool) { return findText(c, MimeTypeHTML) }

func (c *Captions) name() string { return keyCaption }

func (c *Captions) empty() bool { return len(*c) == 0 }

func (c *Captions) encodeFacet(w contentWriter) error {
	w[keyCaption] = textList(*c)
	return nil
}

func (c *Captions) decodeFacet(r *contentReader) (bool, error) {
	list, present, err := readTextList(r, keyCaption)
	*c = Captions(list)
	return present, err
}

func findText(entries []Text, mimeType string) (string, bool) {
	for _, entry := range entries {
		if entry.MimeType == mimeType {
			return entry.Body, true
		}
	}
	return "", false
}

// textList returns entries as a non-nil slice so an empty list encodes
// as [] rather than null.
func textList(entries []Text) []Text {
	if entries == nil {
		return []Text{}
	}
	return entries
}

func readTextList(r *contentReader, key string) (MessageContent, bool, error) {
	var entries []textWire
	present, err := r.decode(key, &entries)
	if err != nil || !present {
		return nil, present, err
	}
	if len(entries) == 0 {
		// An empty list is present but reads back as nil, the value
		// it was written from.
		return nil, true, nil
	}

	list := make(MessageContent, 0, len(entries))
	for i, entry := range entries {
		if entry.Body == nil {
			return nil, true, fmt.Errorf("%w: %s[%d]: missing body", ErrMalformedContent, key, i)
		}
		mimeType := MimeTypePlain
		if entry.MimeType != nil {
			mimeType = *entry.MimeType
		}
		list = append(list, Text{Body: *entry.Body, MimeType: mimeType})
	}
	return list, true, nil
}
