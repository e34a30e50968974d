package string16

import (
	"fmt"
	"slices"
	"strconv"
	"unicode/utf16"
)

// Builder accumulates code units for a String. The zero value is ready to
// use. A Builder must not be copied after first use or shared between
// goroutines.
type Builder struct {
	buf []uint16
}

// NewBuilder returns a Builder with room for capacity units.
func NewBuilder(capacity int) *Builder {
	b := &Builder{}
	b.Grow(capacity)
	return b
}

// Grow ensures room for n more units without reallocation.
func (b *Builder) Grow(n int) {
	if n > 0 {
		b.buf = slices.Grow(b.buf, n+1)
	}
}

// ReserveCapacity ensures the total capacity is at least n units.
func (b *Builder) ReserveCapacity(n int) {
	b.Grow(n - len(b.buf))
}

// Len returns the number of pending units.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset discards the pending units.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Append appends the units of s.
func (b *Builder) Append(s String) {
	b.buf = append(b.buf, s.units()...)
}

// AppendUnit appends a single code unit.
func (b *Builder) AppendUnit(u uint16) {
	b.buf = append(b.buf, u)
}

// AppendRune appends r as one unit or a surrogate pair.
func (b *Builder) AppendRune(r rune) {
	b.buf = utf16.AppendRune(b.buf, r)
}

// AppendByte widens c into one code unit.
func (b *Builder) AppendByte(c byte) {
	b.buf = append(b.buf, uint16(c))
}

// AppendUnits appends units verbatim.
func (b *Builder) AppendUnits(units []uint16) {
	b.buf = append(b.buf, units...)
}

// AppendLatin1 widens every byte of p into one code unit.
func (b *Builder) AppendLatin1(p []byte) {
	b.buf = slices.Grow(b.buf, len(p))
	for _, c := range p {
		b.buf = append(b.buf, uint16(c))
	}
}

// AppendASCII widens every byte of s into one code unit.
func (b *Builder) AppendASCII(s string) {
	b.buf = slices.Grow(b.buf, len(s))
	for i := 0; i < len(s); i++ {
		b.buf = append(b.buf, uint16(s[i]))
	}
}

// AppendInt appends the base-10 text of n, like FromInt.
func (b *Builder) AppendInt(n int) {
	b.AppendInt64(int64(n))
}

// AppendInt64 appends the base-10 text of n.
func (b *Builder) AppendInt64(n int64) {
	var scratch [24]byte
	b.AppendLatin1(strconv.AppendInt(scratch[:0], n, 10))
}

// AppendUint appends the base-10 text of n, like FromUint.
func (b *Builder) AppendUint(n uint) {
	b.AppendUint64(uint64(n))
}

// AppendUint64 appends the base-10 text of n.
func (b *Builder) AppendUint64(n uint64) {
	var scratch [24]byte
	b.AppendLatin1(strconv.AppendUint(scratch[:0], n, 10))
}

// AppendDouble appends the text of v, like FromDouble.
func (b *Builder) AppendDouble(v float64) {
	var scratch [32]byte
	b.AppendLatin1(appendDouble(scratch[:0], v))
}

// AppendAll appends each part in order, picking the append method from
// its dynamic type:
//
//	String, *String   Append
//	uint16            AppendUnit
//	byte              AppendByte
//	rune              AppendRune
//	[]uint16          AppendUnits
//	[]byte            AppendLatin1
//	string            AppendASCII
//	int, int64        AppendInt, AppendInt64
//	uint, uint64      AppendUint, AppendUint64
//	float64           AppendDouble
//
// Any other type is a programming error and panics.
func (b *Builder) AppendAll(parts ...any) {
	for _, part := range parts {
		switch v := part.(type) {
		case String:
			b.Append(v)
		case *String:
			b.Append(*v)
		case uint16:
			b.AppendUnit(v)
		case byte:
			b.AppendByte(v)
		case rune:
			b.AppendRune(v)
		case []uint16:
			b.AppendUnits(v)
		case []byte:
			b.AppendLatin1(v)
		case string:
			b.AppendASCII(v)
		case int:
			b.AppendInt(v)
		case int64:
			b.AppendInt64(v)
		case uint:
			b.AppendUint(v)
		case uint64:
			b.AppendUint64(v)
		case float64:
			b.AppendDouble(v)
		default:
			panic(fmt.Sprintf("string16: cannot append value of type %T", part))
		}
	}
}

// ToString moves the pending units into a new String and leaves the
// Builder empty. The buffer is handed over without copying when it has
// room for the terminator.
func (b *Builder) ToString() String {
	buf := b.buf
	b.buf = nil
	return seal(buf)
}
