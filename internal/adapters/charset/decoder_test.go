package charset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/adapters/charset"
	"go.trai.ch/string16/internal/core/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		enc  domain.Encoding
		data []byte
		want []uint16
	}{
		{name: "utf-8", enc: domain.EncodingUTF8, data: []byte("hé"), want: []uint16{0x68, 0xE9}},
		{name: "utf-8 malformed", enc: "UTF8", data: []byte{0x61, 0xFF}, want: []uint16{0x61, 0xFFFD}},
		{name: "empty encoding means utf-8", enc: "", data: []byte("a"), want: []uint16{0x61}},
		{name: "latin1", enc: domain.EncodingLatin1, data: []byte{0x41, 0xE9, 0xFF}, want: []uint16{0x41, 0xE9, 0xFF}},
		{name: "utf-16le", enc: domain.EncodingUTF16LE, data: []byte{0x41, 0x00, 0xE9, 0x00}, want: []uint16{0x41, 0xE9}},
		{name: "utf-16be", enc: domain.EncodingUTF16BE, data: []byte{0x00, 0x41, 0x20, 0xAC}, want: []uint16{0x41, 0x20AC}},
		{
			name: "utf-16le surrogate pair",
			enc:  domain.EncodingUTF16LE,
			data: []byte{0x3D, 0xD8, 0x00, 0xDE},
			want: []uint16{0xD83D, 0xDE00},
		},
		{name: "utf-16 without bom is big-endian", enc: domain.EncodingUTF16, data: []byte{0x00, 0x41}, want: []uint16{0x41}},
		{name: "utf-16 little-endian bom", enc: domain.EncodingUTF16, data: []byte{0xFF, 0xFE, 0x41, 0x00}, want: []uint16{0x41}},
		{name: "utf-16 big-endian bom", enc: "utf16", data: []byte{0xFE, 0xFF, 0x00, 0x42}, want: []uint16{0x42}},
		{name: "utf-16 odd trailing byte", enc: domain.EncodingUTF16LE, data: []byte{0x41, 0x00, 0x42}, want: []uint16{0x41, 0xFFFD}},
		{name: "empty input", enc: domain.EncodingUTF16BE, data: nil, want: nil},
		{name: "utf-16le lone high surrogate", enc: domain.EncodingUTF16LE, data: []byte{0x00, 0xD8, 0x41, 0x00}, want: []uint16{0xD800, 0x41}},
		{name: "utf-16be lone low surrogate", enc: domain.EncodingUTF16BE, data: []byte{0xDC, 0x00}, want: []uint16{0xDC00}},
		{name: "utf-16 reversed pair", enc: domain.EncodingUTF16, data: []byte{0xFF, 0xFE, 0x00, 0xDE, 0x3D, 0xD8}, want: []uint16{0xDE00, 0xD83D}},
		{name: "utf-16le keeps a bom as a unit", enc: domain.EncodingUTF16LE, data: []byte{0xFF, 0xFE, 0x41, 0x00}, want: []uint16{0xFEFF, 0x41}},
		{name: "utf-16 bom only", enc: domain.EncodingUTF16, data: []byte{0xFE, 0xFF}, want: nil},
	}

	dec := charset.NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dec.Decode(tt.data, tt.enc)
			require.NoError(t, err)
			assert.True(t, string16.FromUnits(tt.want).Equal(got), "got units %x", got.Characters16())
		})
	}
}

func TestDecode_Latin1MatchesFromLatin1(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	got, err := charset.NewDecoder().Decode(data, domain.EncodingLatin1)
	require.NoError(t, err)
	assert.True(t, string16.FromLatin1(data).Equal(got))
}

func TestDecode_UnknownEncoding(t *testing.T) {
	_, err := charset.NewDecoder().Decode([]byte("a"), "ebcdic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEncoding))
}

func TestDecode_UTF16MatchesUnmarshalBinary(t *testing.T) {
	data := []byte{0x3D, 0xD8, 0x68, 0x00, 0x00, 0xDC, 0xE9, 0x00}

	var want string16.String
	require.NoError(t, want.UnmarshalBinary(data))

	got, err := charset.NewDecoder().Decode(data, domain.EncodingUTF16LE)
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got units %x", got.Characters16())
}
