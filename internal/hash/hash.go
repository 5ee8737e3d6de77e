// Package hash provides xxHash64 helpers used for schema fingerprinting.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given string.
func Sum64(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates a sequence of fields into a single xxHash64 value.
//
// Each field is written with a little-endian length prefix so that the
// stream is unambiguous: ("ab","c") and ("a","bc") hash differently.
type Digest struct {
	d xxhash.Digest
}

// NewDigest creates a new, empty Digest.
func NewDigest() *Digest {
	d := &Digest{}
	d.d.Reset()

	return d
}

// WriteString adds a length-prefixed string field to the digest.
func (d *Digest) WriteString(s string) {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], uint64(len(s)))
	_, _ = d.d.Write(prefix[:])
	_, _ = d.d.WriteString(s)
}

// WriteByte adds a single raw byte to the digest. The error is always nil.
func (d *Digest) WriteByte(b byte) error {
	_, err := d.d.Write([]byte{b})
	return err
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
