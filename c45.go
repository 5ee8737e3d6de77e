// Package c45 parses datasets stored in the C4.5 text format: a '.names'
// schema file plus a matching '.data' records file, loaded eagerly into a
// typed in-memory representation suitable for numeric processing.
//
// # Basic Usage
//
// Parsing a dataset by base name:
//
//	import "github.com/arloliu/c45"
//
//	// Locates voting.names and voting.data anywhere under ./datasets
//	examples, err := c45.Parse("voting", "./datasets")
//	if err != nil {
//	    return err
//	}
//
//	// Materialize as float rows; missing cells have Valid == false
//	rows, err := examples.ToFloat(nil)
//
// Observing skipped rows in dirty datasets:
//
//	examples, err := c45.Parse("voting", "./datasets",
//	    parser.WithDiagnosticSink(func(d parser.Diagnostic) {
//	        log.Printf("skipping line %d: %v", d.Line, d.Err)
//	    }))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the parser
// package. The schema package holds the feature model, the dataset package
// the Example/ExampleSet containers, and the parser package the file
// discovery and the '.names'/'.data' parsers. Dataset files compressed as
// .gz, .zst, .s2 or .lz4 are handled transparently.
package c45

import (
	"fmt"

	"github.com/arloliu/c45/dataset"
	"github.com/arloliu/c45/parser"
)

// Parse locates 'base.names' and 'base.data' under root and parses them
// into an ExampleSet.
//
// Parameters:
//   - base: Dataset base name, as in 'base.names'.
//   - root: Root of the directory tree to search for the file pair.
//   - opts: Optional record-parser configuration (see parser.Option).
//
// Returns:
//   - *dataset.ExampleSet: The parsed examples, in data-file order.
//   - error: A lookup error if either file is missing, or a parse error
//     wrapped with the failing phase.
func Parse(base, root string, opts ...parser.Option) (*dataset.ExampleSet, error) {
	namesPath, dataPath, err := parser.FindPair(base, root)
	if err != nil {
		return nil, err
	}

	return ParseFiles(namesPath, dataPath, opts...)
}

// ParseFiles parses an already-located '.names'/'.data' file pair into an
// ExampleSet. Either file may be compressed.
//
// Returns:
//   - *dataset.ExampleSet: The parsed examples, in data-file order.
//   - error: The schema or data error wrapped with the failing phase.
func ParseFiles(namesPath, dataPath string, opts ...parser.Option) (*dataset.ExampleSet, error) {
	s, err := parser.ParseNamesFile(namesPath)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	examples, err := parser.ParseDataFile(dataPath, s, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing examples: %w", err)
	}

	return examples, nil
}
