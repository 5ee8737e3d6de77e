// Package errs defines the sentinel error values shared across the c45 module.
//
// Callers can match these with errors.Is even when they have been wrapped
// with additional context by the parsing entry points.
package errs

import "errors"

var (
	// ErrSchemaFileNotFound indicates the '.names' file was not found under the search root.
	ErrSchemaFileNotFound = errors.New("schema file not found")
	// ErrDataFileNotFound indicates the '.data' file was not found under the search root.
	ErrDataFileNotFound = errors.New("data file not found")

	// ErrNoClassLine indicates a '.names' file that never declares the '0, 1' class line.
	ErrNoClassLine = errors.New("file does not contain a class line")
	// ErrNoFeatureName indicates a non-blank '.names' line with no 'name:' prefix.
	ErrNoFeatureName = errors.New("no feature name found")

	// ErrMissingDomain indicates an Id or Nominal feature constructed without domain values.
	ErrMissingDomain = errors.New("no domain values for feature kind")
	// ErrUnexpectedDomain indicates domain values supplied for a kind that does not carry any.
	ErrUnexpectedDomain = errors.New("domain values given for feature kind")

	// ErrSchemaMismatch indicates an example whose schema differs from its example set's schema.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrFieldCountMismatch indicates a data row whose token count differs from the schema length.
	ErrFieldCountMismatch = errors.New("feature-data size mismatch")

	// ErrValueNotInDomain indicates an Id or Nominal value absent from its feature's domain.
	ErrValueNotInDomain = errors.New("value not in feature domain")
	// ErrValueKindMismatch indicates a value whose dynamic type does not match its feature's kind.
	ErrValueKindMismatch = errors.New("value kind does not match feature kind")
)
