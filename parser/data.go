package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/c45/dataset"
	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/internal/options"
	"github.com/arloliu/c45/schema"
)

// maxLineSize caps the scanner buffer for a single dataset line.
const maxLineSize = 1024 * 1024

// ParseData parses the content of a '.data' file against the given schema
// into an ExampleSet, one example per non-blank line in file order.
//
// Malformed rows (wrong field count, bad numeric or boolean token) are
// skipped, reported to the configured DiagnosticSink, and parsing
// continues with the next line.
//
// Returns:
//   - *dataset.ExampleSet: The populated set; possibly shorter than the
//     file when rows were skipped.
//   - error: A read error, or an option-application error. Row errors never
//     propagate here.
func ParseData(r io.Reader, s *schema.Schema, opts ...Option) (*dataset.ExampleSet, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	set := dataset.NewExampleSet(s)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := TrimLine(scanner.Text())
		if line == "" {
			continue
		}

		ex, err := parseExample(s, line, cfg.strictValues)
		if err == nil {
			err = set.Append(ex)
		}
		if err != nil {
			cfg.sink(Diagnostic{Line: lineNo, Text: line, Err: err})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	return set, nil
}

// parseExample parses a single trimmed, non-blank data line.
func parseExample(s *schema.Schema, line string, strict bool) (*dataset.Example, error) {
	values := SplitValues(line)
	if len(values) != s.Len() {
		return nil, fmt.Errorf("%w: got %d fields, want %d", errs.ErrFieldCountMismatch, len(values), s.Len())
	}

	ex := dataset.NewExample(s)
	for i, tok := range values {
		if tok == "?" {
			// Unknown value, slot stays missing
			continue
		}

		v, err := coerceValue(s.At(i), tok, strict)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		ex.SetValue(i, v)
	}

	return ex, nil
}

// coerceValue converts one raw token to the typed value its feature kind
// demands. ID/Nominal tokens are stored verbatim; domain membership is only
// checked here when strict is set, otherwise it is deferred to ToFloat.
func coerceValue(f schema.Feature, tok string, strict bool) (schema.Value, error) {
	switch f.Kind() {
	case schema.KindID, schema.KindNominal:
		if strict {
			if _, ok := f.DomainIndex(tok); !ok {
				return schema.Value{}, fmt.Errorf("feature %q, value %q: %w", f.Name(), tok, errs.ErrValueNotInDomain)
			}
		}

		return schema.StringValue(tok), nil
	case schema.KindBinary, schema.KindClass:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return schema.Value{}, fmt.Errorf("feature %q: parsing %q as integer: %w", f.Name(), tok, err)
		}

		return schema.BoolValue(n != 0), nil
	case schema.KindContinuous:
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return schema.Value{}, fmt.Errorf("feature %q: parsing %q as float: %w", f.Name(), tok, err)
		}

		return schema.FloatValue(x), nil
	default:
		return schema.Value{}, fmt.Errorf("feature %q: unknown kind %d", f.Name(), f.Kind())
	}
}
