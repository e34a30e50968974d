package string16

import (
	"iter"
	"slices"
	"unique"
)

// Key is a comparable, interned handle for the contents of a String.
// Equal strings produce equal keys, so a Key can be used directly as a Go
// map key or compared with ==.
type Key struct {
	h unique.Handle[string]
}

// Key interns s and returns its handle.
func (s String) Key() Key {
	b, _ := s.AppendBinary(make([]byte, 0, 2*s.Len()))
	return Key{h: unique.Make(string(b))}
}

// String16 returns the String the key was made from.
func (k Key) String16() String {
	var zero unique.Handle[string]
	if k.h == zero {
		return String{}
	}
	return decodeUTF16LE([]byte(k.h.Value()))
}

// Map is a hash map keyed by String. It buckets entries by String.Hash
// and tells colliding keys apart with Equal. The zero Map is empty and
// ready to use. A Map is not safe for concurrent use.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	n       int
}

type mapEntry[V any] struct {
	key   String
	value V
}

// NewMap returns an empty Map sized for about size entries.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V], size)}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.n
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key String) (V, bool) {
	for _, e := range m.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous value.
func (m *Map[V]) Set(key String, value V) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[V])
	}
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			bucket[i].value = value
			return
		}
	}
	m.buckets[h] = append(bucket, mapEntry[V]{key: key, value: value})
	m.n++
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key String) bool {
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if !bucket[i].key.Equal(key) {
			continue
		}
		bucket = slices.Delete(bucket, i, i+1)
		if len(bucket) == 0 {
			delete(m.buckets, h)
		} else {
			m.buckets[h] = bucket
		}
		m.n--
		return true
	}
	return false
}

// All iterates over the entries in unspecified order.
func (m *Map[V]) All() iter.Seq2[String, V] {
	return func(yield func(String, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
