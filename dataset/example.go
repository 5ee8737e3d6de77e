package dataset

import (
	"strings"

	"github.com/arloliu/c45/schema"
)

// Example is a single record conforming to a Schema: one value slot per
// schema position plus a floating-point weight (default 1.0).
//
// Slots start out missing and are populated field-by-field during parsing.
// SetValue is unchecked against the feature kind; schema consistency is
// enforced at the ExampleSet boundary, not on bare field writes.
type Example struct {
	schema *schema.Schema
	values []schema.Value
	Weight float64
}

// NewExample creates an Example for the given schema with every slot missing.
func NewExample(s *schema.Schema) *Example {
	return &Example{
		schema: s,
		values: make([]schema.Value, s.Len()),
		Weight: 1.0,
	}
}

// Schema returns the schema this example conforms to.
func (e *Example) Schema() *schema.Schema {
	return e.schema
}

// Len returns the number of value slots.
func (e *Example) Len() int {
	return len(e.values)
}

// Value returns the value at position i.
func (e *Example) Value(i int) schema.Value {
	return e.values[i]
}

// SetValue stores a value at position i.
func (e *Example) SetValue(i int, v schema.Value) {
	e.values[i] = v
}

// Values returns a copy of the value slots.
func (e *Example) Values() []schema.Value {
	return append([]schema.Value(nil), e.values...)
}

// ToFloat converts the example to a row of Float cells via each feature's
// ToFloat, applying transform to the raw row if one is given.
//
// Returns:
//   - []Float: The converted row; missing values yield cells with Valid false.
//   - error: The first domain or kind error reported by a feature.
func (e *Example) ToFloat(transform RowTransform) ([]Float, error) {
	row := make([]Float, len(e.values))
	for i, v := range e.values {
		f, ok, err := e.schema.At(i).ToFloat(v)
		if err != nil {
			return nil, err
		}
		row[i] = Float{Value: f, Valid: ok}
	}

	if transform != nil {
		row = transform(row)
	}

	return row, nil
}

// String renders the example as its data-file token sequence.
func (e *Example) String() string {
	parts := make([]string, len(e.values))
	for i, v := range e.values {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
