package string16

import "go.trai.ch/zerr"

var (
	// ErrInvalidInteger is returned when a string is not a base-10 integer.
	ErrInvalidInteger = zerr.New("invalid integer")

	// ErrIntegerOutOfRange is returned when a base-10 integer does not fit in an int.
	ErrIntegerOutOfRange = zerr.New("integer out of range")

	// ErrOddLength is returned when UTF-16LE input has an odd number of bytes.
	ErrOddLength = zerr.New("utf-16 input has odd length")

	// ErrNotScalar is returned when a YAML node for a string is not a scalar.
	ErrNotScalar = zerr.New("expected a scalar node")
)
