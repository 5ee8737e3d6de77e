package dataset

import (
	"fmt"
	"strings"

	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/schema"
)

// ExampleSet is a mutable ordered sequence of Examples sharing one Schema.
// Example order is insertion order and is meaningful: rows correspond 1:1
// to source data-file lines.
type ExampleSet struct {
	schema   *schema.Schema
	examples []*Example
}

// NewExampleSet creates an ExampleSet. A nil schema creates a schema-less
// set that adopts the schema of the first example appended to it.
func NewExampleSet(s *schema.Schema) *ExampleSet {
	return &ExampleSet{schema: s}
}

// FromExamples creates an ExampleSet from a sequence of examples, adopting
// the first example's schema and checking the rest against it.
//
// Returns:
//   - *ExampleSet: The populated set.
//   - error: ErrSchemaMismatch if the examples do not share one schema.
func FromExamples(examples ...*Example) (*ExampleSet, error) {
	s := NewExampleSet(nil)
	for _, ex := range examples {
		if err := s.Append(ex); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Schema returns the set's schema, or nil if the set is schema-less.
func (s *ExampleSet) Schema() *schema.Schema {
	return s.schema
}

// Len returns the number of examples.
func (s *ExampleSet) Len() int {
	return len(s.examples)
}

// At returns the example at position i.
func (s *ExampleSet) At(i int) *Example {
	return s.examples[i]
}

// Examples returns the examples in insertion order. The slice is shared;
// callers must not reorder it.
func (s *ExampleSet) Examples() []*Example {
	return s.examples
}

// checkSchema validates ex against the set's schema, adopting ex's schema
// when the set has none yet. The fingerprint comparison inside Schema.Equal
// makes the common reject case cheap.
func (s *ExampleSet) checkSchema(ex *Example) error {
	if s.schema == nil {
		s.schema = ex.Schema()
		return nil
	}
	if !s.schema.Equal(ex.Schema()) {
		return errs.ErrSchemaMismatch
	}

	return nil
}

// Append adds an example to the end of the set.
//
// Returns:
//   - error: ErrSchemaMismatch if the example's schema differs from the
//     set's established schema. The set is unchanged on error.
func (s *ExampleSet) Append(ex *Example) error {
	if err := s.checkSchema(ex); err != nil {
		return err
	}
	s.examples = append(s.examples, ex)

	return nil
}

// Insert inserts an example at position i, shifting later examples up.
//
// Returns:
//   - error: ErrSchemaMismatch on a schema difference, or an index error
//     if i is out of range. The set is unchanged on error.
func (s *ExampleSet) Insert(i int, ex *Example) error {
	if i < 0 || i > len(s.examples) {
		return fmt.Errorf("insert index %d out of range [0, %d]", i, len(s.examples))
	}
	if err := s.checkSchema(ex); err != nil {
		return err
	}
	s.examples = append(s.examples, nil)
	copy(s.examples[i+1:], s.examples[i:])
	s.examples[i] = ex

	return nil
}

// Set replaces the example at position i.
//
// Returns:
//   - error: ErrSchemaMismatch on a schema difference, or an index error
//     if i is out of range. The set is unchanged on error.
func (s *ExampleSet) Set(i int, ex *Example) error {
	if i < 0 || i >= len(s.examples) {
		return fmt.Errorf("set index %d out of range [0, %d)", i, len(s.examples))
	}
	if err := s.checkSchema(ex); err != nil {
		return err
	}
	s.examples[i] = ex

	return nil
}

// Remove deletes the example at position i, shifting later examples down.
func (s *ExampleSet) Remove(i int) error {
	if i < 0 || i >= len(s.examples) {
		return fmt.Errorf("remove index %d out of range [0, %d)", i, len(s.examples))
	}
	s.examples = append(s.examples[:i], s.examples[i+1:]...)

	return nil
}

// ToFloat converts every example to a row of Float cells in insertion
// order, applying transform to each row independently if one is given.
//
// Returns:
//   - [][]Float: One row per example.
//   - error: The first conversion error, identifying the offending row.
func (s *ExampleSet) ToFloat(transform RowTransform) ([][]Float, error) {
	rows := make([][]Float, len(s.examples))
	for i, ex := range s.examples {
		row, err := ex.ToFloat(transform)
		if err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
		rows[i] = row
	}

	return rows, nil
}

// String renders the set as its example sequence.
func (s *ExampleSet) String() string {
	parts := make([]string, len(s.examples))
	for i, ex := range s.examples {
		parts[i] = ex.String()
	}

	return "[" + strings.Join(parts, ",\n ") + "]"
}
