package schema

import (
	"strings"

	"github.com/arloliu/c45/internal/hash"
)

// Schema is an immutable ordered sequence of Features describing the shape
// of every record in a dataset.
//
// A Schema is built once per parsed dataset and shared by pointer across
// all examples of that dataset; it is never mutated after construction, so
// sharing requires no synchronization.
type Schema struct {
	features    []Feature
	fingerprint uint64
}

// New creates a Schema from the given features. The slice is copied.
func New(features ...Feature) *Schema {
	s := &Schema{features: append([]Feature(nil), features...)}

	d := hash.NewDigest()
	for _, f := range s.features {
		f.writeDigest(d)
	}
	s.fingerprint = d.Sum64()

	return s
}

// Len returns the number of features.
func (s *Schema) Len() int {
	return len(s.features)
}

// At returns the feature at position i.
func (s *Schema) At(i int) Feature {
	return s.features[i]
}

// Features returns a copy of the feature sequence.
func (s *Schema) Features() []Feature {
	return append([]Feature(nil), s.features...)
}

// Contains reports whether the schema contains a feature equal to f.
func (s *Schema) Contains(f Feature) bool {
	for _, sf := range s.features {
		if sf.Equal(f) {
			return true
		}
	}

	return false
}

// Fingerprint returns a 64-bit xxHash64 of the feature sequence. Two equal
// schemas always have equal fingerprints, so a fingerprint mismatch proves
// inequality without an element-wise walk.
func (s *Schema) Fingerprint() uint64 {
	return s.fingerprint
}

// Equal reports whether two schemas have element-wise equal feature
// sequences. Both nil counts as equal.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.fingerprint != other.fingerprint || len(s.features) != len(other.features) {
		return false
	}
	for i, f := range s.features {
		if !f.Equal(other.features[i]) {
			return false
		}
	}

	return true
}

// String renders the schema as its feature sequence.
func (s *Schema) String() string {
	parts := make([]string, len(s.features))
	for i, f := range s.features {
		parts[i] = f.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
