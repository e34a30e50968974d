package string16

import (
	"encoding/binary"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
// It returns the UTF-8 form of s.
func (s String) MarshalText() ([]byte, error) {
	return s.AppendUTF8(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It decodes text as UTF-8.
func (s *String) UnmarshalText(text []byte) error {
	*s = FromUTF8(text)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String) MarshalYAML() (any, error) {
	return s.UTF8(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return zerr.With(zerr.Wrap(ErrNotScalar, "decode yaml string"), "line", node.Line)
	}
	*s = FromString(node.Value)
	return nil
}

// AppendBinary appends the UTF-16LE encoding of s to b.
func (s String) AppendBinary(b []byte) ([]byte, error) {
	for _, u := range s.units() {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b, nil
}

// MarshalBinary returns the UTF-16LE encoding of s. Every unit is kept,
// including unpaired surrogates.
func (s String) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, 2*s.Len()))
}

// UnmarshalBinary decodes UTF-16LE data written by MarshalBinary.
func (s *String) UnmarshalBinary(data []byte) error {
	if len(data)%2 != 0 {
		return zerr.With(zerr.Wrap(ErrOddLength, "decode utf-16le"), "length", len(data))
	}
	*s = decodeUTF16LE(data)
	return nil
}

func decodeUTF16LE(data []byte) String {
	if len(data) < 2 {
		return String{}
	}
	n := len(data) / 2
	units := make([]uint16, n, n+1)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return seal(units)
}
