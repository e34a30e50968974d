package string16

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	"go.trai.ch/zerr"
)

// MaxPrecision is the largest significant digit count FromDoublePrecision honors.
const MaxPrecision = 100

// exactDigits is enough 'e' precision to print any float64 exactly.
const exactDigits = 767

// FromInt returns the base-10 text of n.
func FromInt(n int) String {
	return FromInt64(int64(n))
}

// FromInt64 returns the base-10 text of n.
func FromInt64(n int64) String {
	var scratch [24]byte
	return FromLatin1(strconv.AppendInt(scratch[:0], n, 10))
}

// FromUint returns the base-10 text of n.
func FromUint(n uint) String {
	return FromUint64(uint64(n))
}

// FromUint64 returns the base-10 text of n.
func FromUint64(n uint64) String {
	var scratch [24]byte
	return FromLatin1(strconv.AppendUint(scratch[:0], n, 10))
}

// FromDouble formats v the way JavaScript's Number.prototype.toString does:
// the shortest digits that round-trip, in plain decimal notation for
// exponents in [-7, 21) and exponential notation otherwise.
func FromDouble(v float64) String {
	var scratch [32]byte
	return FromLatin1(appendDouble(scratch[:0], v))
}

// FromDoublePrecision formats v with the given number of significant
// digits, matching JavaScript's Number.prototype.toPrecision. Ties round
// away from zero. precision is clamped to [1, MaxPrecision].
func FromDoublePrecision(v float64, precision int) String {
	precision = min(max(precision, 1), MaxPrecision)
	scratch := make([]byte, 0, precision+16)
	return FromLatin1(appendPrecision(scratch, v, precision))
}

func appendSpecial(dst []byte, v float64) ([]byte, bool) {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...), true
	case math.IsInf(v, 1):
		return append(dst, "Infinity"...), true
	case math.IsInf(v, -1):
		return append(dst, "-Infinity"...), true
	}
	return dst, false
}

func appendDouble(dst []byte, v float64) []byte {
	if out, ok := appendSpecial(dst, v); ok {
		return out
	}
	if v == 0 {
		return append(dst, '0')
	}
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}

	var scratch [32]byte
	digits, n := splitExponent(strconv.AppendFloat(scratch[:0], v, 'e', -1, 64))
	k := len(digits)

	switch {
	case k <= n && n <= 21:
		dst = append(dst, digits...)
		for range n - k {
			dst = append(dst, '0')
		}
	case 0 < n && n <= 21:
		dst = append(dst, digits[:n]...)
		dst = append(dst, '.')
		dst = append(dst, digits[n:]...)
	case -6 < n && n <= 0:
		dst = append(dst, '0', '.')
		for range -n {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	default:
		dst = append(dst, digits[0])
		if k > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = appendExponent(dst, n-1)
	}
	return dst
}

func appendPrecision(dst []byte, v float64, p int) []byte {
	if out, ok := appendSpecial(dst, v); ok {
		return out
	}
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}

	var digits []byte
	e := 0
	if v == 0 {
		digits = bytes.Repeat([]byte{'0'}, p)
	} else {
		digits, e = roundDigits(v, p)
	}

	switch {
	case e < -6 || e >= p:
		dst = append(dst, digits[0])
		if p > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		return appendExponent(dst, e)
	case e == p-1:
		return append(dst, digits...)
	case e >= 0:
		dst = append(dst, digits[:e+1]...)
		dst = append(dst, '.')
		return append(dst, digits[e+1:]...)
	default:
		dst = append(dst, '0', '.')
		for range -(e + 1) {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}
}

// roundDigits returns the first p significant digits of v, rounded half up
// on the exact binary value, and the decimal exponent of the first digit.
func roundDigits(v float64, p int) ([]byte, int) {
	exact, n := splitExponent(strconv.AppendFloat(nil, v, 'e', exactDigits, 64))
	e := n - 1

	out := make([]byte, p)
	copy(out, exact[:p])
	if exact[p] < '5' {
		return out, e
	}
	i := p - 1
	for ; i >= 0; i-- {
		if out[i] != '9' {
			out[i]++
			break
		}
		out[i] = '0'
	}
	if i < 0 {
		out[0] = '1'
		e++
	}
	return out, e
}

// splitExponent splits strconv's "d.ddde±xx" form into its digits and the
// exponent n such that the value is 0.d1d2... × 10^n.
func splitExponent(b []byte) ([]byte, int) {
	i := bytes.IndexByte(b, 'e')
	mant := b[:i]
	exp, _ := strconv.Atoi(string(b[i+1:]))
	if len(mant) == 1 {
		return mant, exp + 1
	}
	digits := make([]byte, 0, len(mant)-1)
	digits = append(digits, mant[0])
	digits = append(digits, mant[2:]...)
	return digits, exp + 1
}

func appendExponent(dst []byte, e int) []byte {
	dst = append(dst, 'e')
	if e < 0 {
		dst = append(dst, '-')
		e = -e
	} else {
		dst = append(dst, '+')
	}
	return strconv.AppendInt(dst, int64(e), 10)
}

// ToInteger parses s as a base-10 int: an optional sign followed by one or
// more ASCII digits, with nothing else around them. It returns (0, false)
// on failure.
func (s String) ToInteger() (int, bool) {
	n, err := s.ParseInteger()
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseInteger is ToInteger with a descriptive error.
func (s String) ParseInteger() (int, error) {
	text, ok := s.asciiText()
	if !ok || !isDecimal(text) {
		return 0, zerr.With(zerr.Wrap(ErrInvalidInteger, "parse integer"), "input", s.UTF8())
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrIntegerOutOfRange, "parse integer"), "input", text)
	}
	return n, nil
}

// ToDouble parses s as a decimal floating-point number. Besides the usual
// decimal and exponent forms it accepts Infinity, -Infinity and NaN, as
// JavaScript does. Values beyond the float64 range become ±Inf.
func (s String) ToDouble() (float64, bool) {
	text, ok := s.asciiText()
	if !ok {
		return 0, false
	}
	switch text {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	case "NaN":
		return math.NaN(), true
	}
	if !isFloat(text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// asciiText returns s as a Go string if every unit is ASCII.
func (s String) asciiText() (string, bool) {
	units := s.units()
	b := make([]byte, len(units))
	for i, u := range units {
		if u >= 0x80 {
			return "", false
		}
		b[i] = byte(u)
	}
	return string(b), true
}

func isDecimal(text string) bool {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// isFloat restricts input to the characters of decimal notation so that
// strconv's hex, underscore and inf/nan spellings are rejected.
func isFloat(text string) bool {
	digits := false
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return digits
}
