package string16

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// hashCell memoizes String.Hash. Zero means not computed yet.
type hashCell struct {
	v atomic.Uint64
}

// Hash returns the polynomial hash h = 31*h + c over the units of s, where
// c is the low byte of each unit taken as a signed 8-bit value. The result
// is never zero, so it can be cached; a natural zero maps to 1.
//
// Equal strings have equal hashes. The converse does not hold: units that
// differ only in their high byte collide.
func (s String) Hash() uint64 {
	if s.hash != nil {
		if h := s.hash.v.Load(); h != 0 {
			return h
		}
	}
	h := polynomialHash(s.units())
	if s.hash != nil {
		s.hash.v.Store(h)
	}
	return h
}

func polynomialHash(units []uint16) uint64 {
	var h uint64
	for _, u := range units {
		h = 31*h + uint64(int64(int8(u)))
	}
	if h == 0 {
		h = 1
	}
	return h
}

// Fingerprint returns the XXHash of the UTF-16LE encoding of s.
// Unlike Hash it covers every bit of every unit.
func (s String) Fingerprint() uint64 {
	d := xxhash.New()
	var chunk [512]byte
	units := s.units()
	for len(units) > 0 {
		n := min(len(units), len(chunk)/2)
		for i, u := range units[:n] {
			binary.LittleEndian.PutUint16(chunk[2*i:], u)
		}
		_, _ = d.Write(chunk[:2*n])
		units = units[n:]
	}
	return d.Sum64()
}
