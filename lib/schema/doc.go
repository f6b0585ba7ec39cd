// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines extensible (MSC1767) message-like event
// content: reusable facets and the event types composed from them.
//
// A facet is a self-contained piece of content stored under one
// namespaced top-level key:
//
//   - [MessageContent] -- text in one or more MIME representations
//     ("org.matrix.msc1767.message", or the "org.matrix.msc1767.text"
//     shorthand for a single plain-text entry)
//   - [FileContent] -- an uploaded file, plain or encrypted
//   - [ImageContent] -- image dimensions
//   - [Thumbnails] -- scaled-down previews
//   - [Captions] -- a caption for media
//   - [Relation] -- a reply, thread or custom relation ("m.relates_to")
//
// Event content types place their facets side by side in one flat
// object. [ImageEventContent] for example combines message, file, image,
// thumbnail and caption facets with an optional relation:
//
//	content := schema.PlainImageEventContent("my_house.jpg",
//	    schema.PlainFile(uri, schema.FileInfo{Name: "my_house.jpg"}))
//	data, err := json.Marshal(content)
//
// Every content type serializes to JSON (encoding/json) and to CBOR
// (fxamacker/cbor via lib/codec) with the same keys. Decoding fails with
// [ErrMalformedContent] when a facet is present but unreadable, and with
// [ErrMissingMandatoryFacet] when a required facet is absent. Unknown
// top-level keys are ignored.
//
// [DecodeContent] selects the content type from an event type string;
// unrecognized types decode as [CustomEventContent]. [MessageLikeEvent]
// is the surrounding event envelope.
package schema
