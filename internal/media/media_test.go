package media_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/media"
)

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestEncode(t *testing.T) {
	t.Run("Sniffs the media type", func(t *testing.T) {
		uri, inline, err := media.Encode(media.Attachment{Name: "cat.png", Data: pngHeader})
		require.NoError(t, err)

		assert.Equal(t, "image/png", inline.MIMEType)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
		decoded, err := inline.Bytes()
		require.NoError(t, err)
		assert.Equal(t, pngHeader, decoded)
	})

	t.Run("Rejects empty attachments", func(t *testing.T) {
		_, _, err := media.Encode(media.Attachment{})
		assert.ErrorIs(t, err, media.ErrEmpty)
	})

	t.Run("Rejects non-image content", func(t *testing.T) {
		_, _, err := media.Encode(media.Attachment{MIMEType: "image/png", Data: []byte("plain text, not pixels")})
		assert.ErrorIs(t, err, media.ErrNotImage)
	})

	t.Run("Rejects oversized attachments", func(t *testing.T) {
		_, _, err := media.Encode(media.Attachment{Data: make([]byte, media.MaxImageBytes+1)})
		assert.ErrorIs(t, err, media.ErrTooLarge)
	})
}

func TestParseDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("abc"))

	tests := []struct {
		name     string
		uri      string
		wantMIME string
		wantErr  bool
	}{
		{name: "jpeg", uri: "data:image/jpeg;base64," + payload, wantMIME: "image/jpeg"},
		{name: "missing media type", uri: "data:;base64," + payload, wantMIME: "application/octet-stream"},
		{name: "no comma", uri: "data:image/png;base64", wantErr: true},
		{name: "not a data uri", uri: "https://example.com/a.png,x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inline, err := media.ParseDataURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, media.ErrInvalidDataURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, inline.MIMEType)
			assert.Equal(t, payload, inline.Data)
		})
	}
}
