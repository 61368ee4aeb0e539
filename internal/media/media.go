// Package media turns uploaded image files into the two forms the chat needs:
// a data URI stored on the user message and an inline payload sent to the model.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes bounds a single attachment.
const MaxImageBytes = 20 << 20

var (
	ErrEmpty          = errors.New("media: attachment is empty")
	ErrTooLarge       = errors.New("media: attachment is too large")
	ErrNotImage       = errors.New("media: attachment is not an image")
	ErrInvalidDataURI = errors.New("media: malformed data URI")
)

// Attachment is a raw file supplied by the user.
type Attachment struct {
	Name     string
	MIMEType string // Optional; sniffed from the content when empty.
	Data     []byte
}

// Inline is a base64 payload plus its media type, ready for transmission.
type Inline struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Bytes decodes the base64 payload.
func (i Inline) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(i.Data)
}

// Encode validates an attachment and returns its data URI and inline payload.
func Encode(att Attachment) (string, Inline, error) {
	if len(att.Data) == 0 {
		return "", Inline{}, ErrEmpty
	}
	if len(att.Data) > MaxImageBytes {
		return "", Inline{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(att.Data))
	}

	detected := mimetype.Detect(att.Data)
	mimeType := detected.String()
	if !strings.HasPrefix(mimeType, "image/") {
		return "", Inline{}, fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
	}
	// Prefer the declared type when it agrees with the content family.
	if declared := baseType(att.MIMEType); strings.HasPrefix(declared, "image/") && detected.Is(declared) {
		mimeType = declared
	} else {
		mimeType = baseType(mimeType)
	}

	uri := DataURI(mimeType, att.Data)
	inline, err := ParseDataURI(uri)
	if err != nil {
		return "", Inline{}, err
	}
	return uri, inline, nil
}

// DataURI formats bytes as a base64 data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits a base64 data URI into its payload and media type.
// A header without a media type falls back to application/octet-stream.
func ParseDataURI(uri string) (Inline, error) {
	header, data, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return Inline{}, ErrInvalidDataURI
	}
	mimeType := "application/octet-stream"
	if t, _, found := strings.Cut(strings.TrimPrefix(header, "data:"), ";"); found && t != "" {
		mimeType = t
	}
	return Inline{Data: data, MIMEType: mimeType}, nil
}

func baseType(t string) string {
	t, _, _ = strings.Cut(t, ";")
	return strings.ToLower(strings.TrimSpace(t))
}
