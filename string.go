package string16

import (
	"bytes"
	"slices"
	"strconv"
)

// NotFound is returned by the Find family when the needle does not occur.
const NotFound = -1

// String is an immutable sequence of UTF-16 code units.
//
// The zero value is the empty string. Copies share the backing buffer and
// the hash cache; neither is written after construction, except for the
// one-time hash memoization.
type String struct {
	// buf holds the code units followed by a single zero unit.
	// It is nil for the empty string.
	buf  []uint16
	hash *hashCell
}

// seal takes ownership of units and appends the terminator.
func seal(units []uint16) String {
	if len(units) == 0 {
		return String{}
	}
	return String{buf: append(units, 0), hash: new(hashCell)}
}

// FromUnits returns a String holding a copy of units.
// Unpaired surrogates are kept as they are.
func FromUnits(units []uint16) String {
	if len(units) == 0 {
		return String{}
	}
	buf := make([]uint16, len(units), len(units)+1)
	copy(buf, units)
	return seal(buf)
}

// FromTerminatedUnits copies units up to, not including, the first zero unit.
func FromTerminatedUnits(units []uint16) String {
	if i := slices.Index(units, 0); i >= 0 {
		units = units[:i]
	}
	return FromUnits(units)
}

// FromLatin1 widens every byte of b into one code unit.
// This is not UTF-8 decoding; use FromUTF8 for text.
func FromLatin1(b []byte) String {
	if len(b) == 0 {
		return String{}
	}
	buf := make([]uint16, len(b), len(b)+1)
	for i, c := range b {
		buf[i] = uint16(c)
	}
	return seal(buf)
}

// FromTerminatedLatin1 widens the bytes of b up to the first NUL byte.
func FromTerminatedLatin1(b []byte) String {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return FromLatin1(b)
}

// FromASCII widens every byte of s into one code unit, like FromLatin1.
// It is meant for literals; non-ASCII UTF-8 input is not decoded.
func FromASCII(s string) String {
	if s == "" {
		return String{}
	}
	buf := make([]uint16, len(s), len(s)+1)
	for i := 0; i < len(s); i++ {
		buf[i] = uint16(s[i])
	}
	return seal(buf)
}

func (s String) units() []uint16 {
	if s.buf == nil {
		return nil
	}
	return s.buf[:len(s.buf)-1]
}

// Len returns the number of code units.
func (s String) Len() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

// IsEmpty reports whether s has no code units.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the code unit at index i. It panics if i is out of range.
func (s String) At(i int) uint16 {
	return s.units()[i]
}

// Characters16 returns the code units without copying. The element after
// the last unit in the backing array is always zero, so
// c[:len(c)+1] yields a terminated buffer for non-empty strings.
// Callers must not modify the returned slice.
func (s String) Characters16() []uint16 {
	return s.units()
}

// TerminatedCharacters16 returns the code units followed by a zero unit.
// Callers must not modify the returned slice.
func (s String) TerminatedCharacters16() []uint16 {
	if s.buf == nil {
		return []uint16{0}
	}
	return s.buf
}

// Substring returns at most n code units starting at pos.
// Out-of-range arguments are clamped: a pos past the end or a
// non-positive n yield the empty string, and a negative pos counts as 0.
func (s String) Substring(pos, n int) String {
	size := s.Len()
	pos = max(pos, 0)
	if pos >= size || n <= 0 {
		return String{}
	}
	n = min(n, size-pos)
	if pos == 0 && n == size {
		return s
	}
	return FromUnits(s.buf[pos : pos+n])
}

// SubstringFrom returns the code units from pos to the end.
func (s String) SubstringFrom(pos int) String {
	return s.Substring(pos, s.Len())
}

// StripWhiteSpace trims leading and trailing units in the ASCII
// whitespace set (space, \t, \n, \v, \f, \r). When nothing is trimmed
// the receiver itself is returned.
func (s String) StripWhiteSpace() String {
	units := s.units()
	start, end := 0, len(units)
	for start < end && isSpace(units[start]) {
		start++
	}
	for end > start && isSpace(units[end-1]) {
		end--
	}
	if start == 0 && end == len(units) {
		return s
	}
	return FromUnits(units[start:end])
}

func isSpace(u uint16) bool {
	return u == ' ' || (u >= '\t' && u <= '\r')
}

// Find returns the index of the first occurrence of needle, or NotFound.
func (s String) Find(needle String) int {
	return s.FindFrom(needle, 0)
}

// FindFrom returns the index of the first occurrence of needle at or after
// start. An empty needle matches at start when start <= Len.
func (s String) FindFrom(needle String, start int) int {
	hay, nd := s.units(), needle.units()
	start = max(start, 0)
	if start > len(hay) {
		return NotFound
	}
	if len(nd) == 0 {
		return start
	}
	if i := indexUnits(hay[start:], nd); i >= 0 {
		return start + i
	}
	return NotFound
}

// FindUnit returns the index of the first unit equal to c, or NotFound.
func (s String) FindUnit(c uint16) int {
	return s.FindUnitFrom(c, 0)
}

// FindUnitFrom returns the index of the first unit equal to c at or after start.
func (s String) FindUnitFrom(c uint16, start int) int {
	hay := s.units()
	start = max(start, 0)
	if start >= len(hay) {
		return NotFound
	}
	if i := slices.Index(hay[start:], c); i >= 0 {
		return start + i
	}
	return NotFound
}

// ReverseFind returns the index of the last occurrence of needle, or NotFound.
func (s String) ReverseFind(needle String) int {
	return s.ReverseFindFrom(needle, s.Len())
}

// ReverseFindFrom returns the index of the last occurrence of needle that
// begins at or before start.
func (s String) ReverseFindFrom(needle String, start int) int {
	hay, nd := s.units(), needle.units()
	if len(nd) > len(hay) {
		return NotFound
	}
	start = min(max(start, 0), len(hay)-len(nd))
	for i := start; i >= 0; i-- {
		if slices.Equal(hay[i:i+len(nd)], nd) {
			return i
		}
	}
	return NotFound
}

// ReverseFindUnit returns the index of the last unit equal to c, or NotFound.
func (s String) ReverseFindUnit(c uint16) int {
	return s.ReverseFindUnitFrom(c, s.Len())
}

// ReverseFindUnitFrom returns the index of the last unit equal to c at or
// before start.
func (s String) ReverseFindUnitFrom(c uint16, start int) int {
	hay := s.units()
	if len(hay) == 0 {
		return NotFound
	}
	for i := min(max(start, 0), len(hay)-1); i >= 0; i-- {
		if hay[i] == c {
			return i
		}
	}
	return NotFound
}

func indexUnits(hay, needle []uint16) int {
	n := len(needle)
	first := needle[0]
	for i := 0; i+n <= len(hay); i++ {
		if hay[i] == first && slices.Equal(hay[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// Swap exchanges the contents and hash caches of s and other.
func (s *String) Swap(other *String) {
	*s, *other = *other, *s
}

// Equal reports whether s and o hold the same code units.
func (s String) Equal(o String) bool {
	return slices.Equal(s.units(), o.units())
}

// Compare orders s and o by code unit value, like slices.Compare.
func (s String) Compare(o String) int {
	return slices.Compare(s.units(), o.units())
}

// Less reports whether s sorts before o.
func (s String) Less(o String) bool {
	return s.Compare(o) < 0
}

// Plus returns the concatenation of s and o.
func (s String) Plus(o String) String {
	a, b := s.units(), o.units()
	if len(a)+len(b) == 0 {
		return String{}
	}
	buf := make([]uint16, len(a)+len(b), len(a)+len(b)+1)
	copy(buf, a)
	copy(buf[len(a):], b)
	return seal(buf)
}

// Concat joins heterogeneous fragments through a single Builder.
// See Builder.AppendAll for the accepted fragment types.
func Concat(parts ...any) String {
	var b Builder
	b.AppendAll(parts...)
	return b.ToString()
}

// String returns the UTF-8 form of s.
func (s String) String() string {
	return s.UTF8()
}

// GoString lists the code units of s in hex, for %#v.
func (s String) GoString() string {
	units := s.units()
	b := make([]byte, 0, len("string16.String{}")+8*len(units))
	b = append(b, "string16.String{"...)
	for i, u := range units {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, "0x"...)
		b = append(b, "000"[:4-hexLen(u)]...)
		b = strconv.AppendUint(b, uint64(u), 16)
	}
	return string(append(b, '}'))
}

func hexLen(u uint16) int {
	switch {
	case u >= 0x1000:
		return 4
	case u >= 0x100:
		return 3
	case u >= 0x10:
		return 2
	default:
		return 1
	}
}
