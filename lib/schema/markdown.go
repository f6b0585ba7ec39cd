// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/util"
)

// The goldmark instance never changes after construction and is safe
// to share between goroutines.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// MarkdownMessage returns message content for a body written in
// Markdown. The body is kept as the plain-text representation. An HTML
// representation is added in front of it only when rendering changes
// something beyond wrapping the body in a paragraph, so unformatted
// text stays a single plain-text entry.
//
// Raw HTML in the body is not passed through.
func MarkdownMessage(body string) (MessageContent, error) {
	html, formatted, err := renderMarkdown(body)
	if err != nil {
		return nil, err
	}
	if !formatted {
		return PlainMessage(body), nil
	}
	return HTMLMessage(body, html), nil
}

// MarkdownCaption is MarkdownMessage for captions.
func MarkdownCaption(body string) (Captions, error) {
	message, err := MarkdownMessage(body)
	return Captions(message), err
}

// renderMarkdown converts body to HTML and reports whether the result
// differs from the body as a single escaped paragraph.
func renderMarkdown(body string) (string, bool, error) {
	var rendered bytes.Buffer
	if err := getMarkdown().Convert([]byte(body), &rendered); err != nil {
		return "", false, err
	}

	var paragraph bytes.Buffer
	paragraph.WriteString("<p>")
	paragraph.Write(util.EscapeHTML([]byte(body)))
	paragraph.WriteString("</p>\n")

	formatted := !bytes.Equal(rendered.Bytes(), paragraph.Bytes())
	return string(bytes.TrimRight(rendered.Bytes(), "\n")), formatted, nil
}
