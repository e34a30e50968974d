package domain

import "strings"

// Encoding names the charset of raw input bytes.
type Encoding string

const (
	// EncodingUTF8 decodes UTF-8, replacing malformed sequences with U+FFFD.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingUTF16 decodes UTF-16 with an optional byte order mark, big-endian without one.
	EncodingUTF16 Encoding = "utf-16"
	// EncodingUTF16LE decodes little-endian UTF-16.
	EncodingUTF16LE Encoding = "utf-16le"
	// EncodingUTF16BE decodes big-endian UTF-16.
	EncodingUTF16BE Encoding = "utf-16be"
	// EncodingLatin1 maps each byte to the code point of the same value.
	EncodingLatin1 Encoding = "latin1"
)

// NormalizeEncoding maps a user-supplied charset name to an Encoding.
// It reports false for names it does not know.
func NormalizeEncoding(name string) (Encoding, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8", "":
		return EncodingUTF8, true
	case "utf-16", "utf16":
		return EncodingUTF16, true
	case "utf-16le", "utf16le":
		return EncodingUTF16LE, true
	case "utf-16be", "utf16be":
		return EncodingUTF16BE, true
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, true
	default:
		return "", false
	}
}
