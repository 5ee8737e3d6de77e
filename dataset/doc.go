// Package dataset provides the record containers for parsed C4.5 data:
// Example (one typed, possibly-missing row with a weight) and ExampleSet
// (an ordered collection of examples bound to one schema).
//
// # Schema Association
//
// An ExampleSet constructed without a schema adopts the schema of the first
// example appended to it; every later Append, Insert or Set is checked
// against that schema and fails with errs.ErrSchemaMismatch on a
// difference. Example field writes themselves are unchecked.
//
// # Float Export
//
// ToFloat materializes examples as rows of Float cells. A missing value
// stays missing (Valid is false) rather than becoming a numeric
// placeholder; it is the caller's responsibility to impute or filter gaps
// before building a dense matrix.
package dataset
