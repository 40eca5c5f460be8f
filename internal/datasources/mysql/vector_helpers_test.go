package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32SliceToBytes_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		floats []float32
	}{
		{
			name:   "empty",
			floats: []float32{},
		},
		{
			name:   "single",
			floats: []float32{1.5},
		},
		{
			name:   "multiple",
			floats: []float32{0.1, 0.2, 0.3, -0.5, 100.0},
		},
		{
			name:   "zeros",
			floats: []float32{0.0, 0.0, 0.0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bytes := float32SliceToBytes(tc.floats)
			result, err := bytesToFloat32Slice(bytes)
			require.NoError(t, err)
			assert.Equal(t, tc.floats, result)
		})
	}
}

func TestBytesToFloat32Slice_InvalidLength(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
	}{
		{
			name:  "one_byte",
			bytes: []byte{0x01},
		},
		{
			name:  "three_bytes",
			bytes: []byte{0x01, 0x02, 0x03},
		},
		{
			name:  "five_bytes",
			bytes: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bytesToFloat32Slice(tc.bytes)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid byte length")
		})
	}
}

func TestTextHash(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		body     string
		expected string
	}{
		{
			name:     "empty_title_and_body",
			expected: "75a11da44c802486bc6f65640aa48a730f0f684c5c07a42ba3cd1735eb3fb070",
		},
		{
			name:     "title_and_body",
			title:    "a",
			body:     "b",
			expected: "38022fd2b8dbc5cb3d2cee74e083edbf59e3d4e13d067ebcb5db633d4cff4d8c",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := EmbeddingText(tc.title, tc.body)
			hash := TextHash(text)
			assert.Equal(t, tc.expected, hash)
		})
	}
}

func TestTextHash_ChangesWithText(t *testing.T) {
	original := TextHash(EmbeddingText("Title", "Body"))
	assert.Equal(t, original, TextHash(EmbeddingText("Title", "Body")))
	assert.NotEqual(t, original, TextHash(EmbeddingText("Title", "Body edited")))
	assert.NotEqual(t, original, TextHash(EmbeddingText("Title edited", "Body")))
}
