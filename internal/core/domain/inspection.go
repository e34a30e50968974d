package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/string16"
)

// Inspection describes one input string the way the CLI reports it.
type Inspection struct {
	// Source labels where the text came from: an argument, a file path or stdin.
	Source string
	// Text is the inspected value.
	Text string16.String
}

// NewInspection pairs a value with the label of its source.
func NewInspection(source string, text string16.String) Inspection {
	return Inspection{Source: source, Text: text}
}

// Len returns the number of UTF-16 code units.
func (i Inspection) Len() int {
	return i.Text.Len()
}

// Hash returns the cached polynomial hash of the text.
func (i Inspection) Hash() uint64 {
	return i.Text.Hash()
}

// Fingerprint returns the XXHash of the text's UTF-16LE bytes.
func (i Inspection) Fingerprint() uint64 {
	return i.Text.Fingerprint()
}

// UTF8 returns the text transcoded to UTF-8.
func (i Inspection) UTF8() string {
	return i.Text.UTF8()
}

// Units formats at most limit code units as space-separated four-digit hex.
// A limit of zero or less formats every unit. Truncated output ends with "…".
func (i Inspection) Units(limit int) string {
	return FormatUnits(i.Text.Characters16(), limit)
}

// FormatUnits formats code units as space-separated four-digit hex.
func FormatUnits(units []uint16, limit int) string {
	n := len(units)
	if limit > 0 && n > limit {
		n = limit
	}

	var sb strings.Builder
	sb.Grow(5 * n)
	var scratch [4]byte
	for idx, u := range units[:n] {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		hex := strconv.AppendUint(scratch[:0], uint64(u), 16)
		for range 4 - len(hex) {
			sb.WriteByte('0')
		}
		sb.Write(hex)
	}
	if n < len(units) {
		sb.WriteString(" …")
	}
	return sb.String()
}
