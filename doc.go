// Package string16 implements a UTF-16 code-unit string value and a builder
// for it, for hosts that exchange UTF-16 text with a peer (for example a
// debugging protocol) while working with UTF-8 strings natively.
//
// A String is a sequence of 16-bit code units. It is never validated, so
// unpaired surrogates survive construction, slicing, comparison and the
// binary encoding; only the UTF-8 conversion replaces them with U+FFFD.
//
// Two families of constructors take bytes and must not be confused:
//
//	FromLatin1, FromASCII, FromTerminatedLatin1  widen each byte to one unit
//	FromUTF8, FromString                         decode UTF-8 text
//
// Numbers are formatted the way JavaScript formats them (FromDouble,
// FromDoublePrecision) so that values round-trip through a JS peer.
//
// Strings are values: copy them freely. The hash is computed on first use
// and cached in storage shared by all copies of the same String.
package string16
