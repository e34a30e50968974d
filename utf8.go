package string16

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// UTF8 transcodes s to UTF-8. Surrogate pairs are combined; unpaired
// surrogates become U+FFFD.
func (s String) UTF8() string {
	units := s.units()
	if len(units) == 0 {
		return ""
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.B = appendUTF8(buf.B, units)
	return string(buf.B)
}

// AppendUTF8 appends the UTF-8 form of s to dst and returns the extended slice.
func (s String) AppendUTF8(dst []byte) []byte {
	return appendUTF8(dst, s.units())
}

func appendUTF8(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < utf8.RuneSelf:
			dst = append(dst, byte(u))
		case utf16.IsSurrogate(rune(u)):
			r := utf8.RuneError
			if i+1 < len(units) {
				if pair := utf16.DecodeRune(rune(u), rune(units[i+1])); pair != utf8.RuneError {
					r = pair
					i++
				}
			}
			dst = utf8.AppendRune(dst, r)
		default:
			dst = utf8.AppendRune(dst, rune(u))
		}
	}
	return dst
}

// FromUTF8 decodes UTF-8 text into code units. Code points above U+FFFF
// become surrogate pairs. Every byte that does not start a valid sequence,
// including encoded surrogates and truncated sequences, becomes U+FFFD.
func FromUTF8(b []byte) String {
	if len(b) == 0 {
		return String{}
	}
	units := make([]uint16, 0, len(b)+1)
	for len(b) > 0 {
		if c := b[0]; c < utf8.RuneSelf {
			units = append(units, uint16(c))
			b = b[1:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		units = utf16.AppendRune(units, r)
		b = b[size:]
	}
	return seal(units)
}

// FromString decodes the UTF-8 Go string s, with the same replacement
// policy as FromUTF8.
func FromString(s string) String {
	if s == "" {
		return String{}
	}
	units := make([]uint16, 0, len(s)+1)
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return seal(units)
}
