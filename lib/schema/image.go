// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// ImageContent is the image facet: the dimensions of an image in
// pixels. Both fields are optional.
type ImageContent struct {
	Width  *uint64 `json:"width,omitempty"`
	Height *uint64 `json:"height,omitempty"`
}

// ImageSize returns image content with both dimensions set.
func ImageSize(width, height uint64) ImageContent {
	return ImageContent{Width: &width, Height: &height}
}

// IsEmpty reports whether neither dimension is set.
func (i ImageContent) IsEmpty() bool { return i.Width == nil && i.Height == nil }

func (i *ImageContent) name() string { return keyImage }

func (i *ImageContent) empty() bool { return i.IsEmpty() }

func (i *ImageContent) encodeFacet(w contentWriter) error {
	w[keyImage] = *i
	return nil
}

func (i *ImageContent) decodeFacet(r *contentReader) (bool, error) {
	var image ImageContent
	present, err := r.decode(keyImage, &image)
	if err != nil || !present {
		return present, err
	}
	*i = image
	return true, nil
}

// ThumbnailFile is the file part of a thumbnail. Like FileContent it
// is either plain (Encryption nil) or fully encrypted.
type ThumbnailFile struct {
	URL        ref.MxcURI
	Info       ThumbnailFileInfo
	Encryption *EncryptedFile
}

// ThumbnailFileInfo is optional metadata about a thumbnail file.
type ThumbnailFileInfo struct {
	MimeType string
	Size     *uint64
}

// PlainThumbnailFile returns an unencrypted thumbnail file.
func PlainThumbnailFile(url ref.MxcURI, info ThumbnailFileInfo) ThumbnailFile {
	return ThumbnailFile{URL: url, Info: info}
}

// EncryptedThumbnailFile returns an encrypted thumbnail file.
func EncryptedThumbnailFile(url ref.MxcURI, encryption EncryptedFile, info ThumbnailFileInfo) ThumbnailFile {
	return ThumbnailFile{URL: url, Info: info, Encryption: &encryption}
}

// IsEncrypted reports whether the thumbnail carries an encryption
// bundle.
func (f ThumbnailFile) IsEncrypted() bool { return f.Encryption != nil }

// Thumbnail is one preview of a media file. On the wire the file and
// image fields sit side by side in one object.
type Thumbnail struct {
	File  ThumbnailFile
	Image ImageContent
}

// thumbnailWire flattens a thumbnail. The embedded fileWire's fields
// are promoted into the same object.
type thumbnailWire struct {
	fileWire
	Width  *uint64 `json:"width,omitempty"`
	Height *uint64 `json:"height,omitempty"`
}

// Thumbnails is the thumbnail facet, ordered by preference.
type Thumbnails []Thumbnail

func (t *Thumbnails) name() string { return keyThumbnail }

func (t *Thumbnails) empty() bool { return len(*t) == 0 }

func (t *Thumbnails) encodeFacet(w contentWriter) error {
	entries := make([]thumbnailWire, 0, len(*t))
	for i, thumbnail := range *t {
		if thumbnail.File.URL.IsZero() {
			return fmt.Errorf("%w: %s[%d]: missing url", ErrMalformedContent, keyThumbnail, i)
		}
		wire := thumbnailWire{
			fileWire: newFileWire(thumbnail.File.URL, thumbnail.File.Encryption),
			Width:    thumbnail.Image.Width,
			Height:   thumbnail.Image.Height,
		}
		wire.MimeType = thumbnail.File.Info.MimeType
		wire.Size = thumbnail.File.Info.Size
		entries = append(entries, wire)
	}
	w[keyThumbnail] = entries
	return nil
}

func (t *Thumbnails) decodeFacet(r *contentReader) (bool, error) {
	var entries []thumbnailWire
	present, err := r.decode(keyThumbnail, &entries)
	if err != nil || !present {
		return present, err
	}

	thumbnails := make(Thumbnails, 0, len(entries))
	for i, entry := range entries {
		key := fmt.Sprintf("%s[%d]", keyThumbnail, i)
		url, err := entry.url(key)
		if err != nil {
			return true, err
		}
		encryption, err := entry.encryption(key)
		if err != nil {
			return true, err
		}
		thumbnails = append(thumbnails, Thumbnail{
			File: ThumbnailFile{
				URL:        url,
				Info:       ThumbnailFileInfo{MimeType: entry.MimeType, Size: entry.Size},
				Encryption: encryption,
			},
			Image: ImageContent{Width: entry.Width, Height: entry.Height},
		})
	}
	*t = thumbnails
	return true, nil
}
