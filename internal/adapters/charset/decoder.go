// Package charset decodes raw input bytes into UTF-16 strings.
package charset

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"

	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/charmap"
)

// Decoder implements ports.Decoder.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode converts data to a string16.String using the named encoding.
// Malformed UTF-8 decodes to U+FFFD instead of failing. UTF-16 input keeps
// its code units as they are, unpaired surrogates included.
func (d *Decoder) Decode(data []byte, enc domain.Encoding) (string16.String, error) {
	name, ok := domain.NormalizeEncoding(string(enc))
	if !ok {
		return string16.String{}, zerr.With(zerr.Wrap(domain.ErrInvalidEncoding, "decode input"), "encoding", string(enc))
	}

	switch name {
	case domain.EncodingUTF8:
		return string16.FromUTF8(data), nil
	case domain.EncodingUTF16LE:
		return decodeUnits(data, binary.LittleEndian), nil
	case domain.EncodingUTF16BE:
		return decodeUnits(data, binary.BigEndian), nil
	case domain.EncodingUTF16:
		order, rest := byteOrder(data)
		return decodeUnits(rest, order), nil
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string16.String{}, zerr.With(errors.Join(domain.ErrDecodeFailed, err), "encoding", string(name))
	}
	return string16.FromUTF8(out), nil
}

// byteOrder consumes a leading byte order mark. Without one the data is
// big-endian.
func byteOrder(data []byte) (binary.ByteOrder, []byte) {
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			return binary.LittleEndian, data[2:]
		case data[0] == 0xFE && data[1] == 0xFF:
			return binary.BigEndian, data[2:]
		}
	}
	return binary.BigEndian, data
}

func decodeUnits(data []byte, order binary.ByteOrder) string16.String {
	b := string16.NewBuilder((len(data) + 1) / 2)
	for len(data) >= 2 {
		b.AppendUnit(order.Uint16(data))
		data = data[2:]
	}
	if len(data) == 1 {
		b.AppendRune(utf8.RuneError)
	}
	return b.ToString()
}
