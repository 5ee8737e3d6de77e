package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/schema"
)

// classLineRe matches the anonymous class declaration '0, 1' as a whole
// trimmed line.
var classLineRe = regexp.MustCompile(`^\s*0\s*,\s*1\s*$`)

// ParseNames parses the content of a '.names' file into a Schema.
//
// The class feature is relocated to the end of the feature sequence: the
// '.names' grammar lists the class first, but '.data' rows always carry it
// in the last column.
//
// Returns:
//   - *schema.Schema: The parsed schema, class feature last.
//   - error: errs.ErrNoFeatureName for a non-blank line without a colon,
//     errs.ErrNoClassLine if the file never declares the class line, or a
//     read error. No partial schema is returned on error.
func ParseNames(r io.Reader) (*schema.Schema, error) {
	var features []schema.Feature
	needsID := true

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := TrimLine(scanner.Text())
		if line == "" {
			continue
		}
		if classLineRe.MatchString(line) {
			features = append(features, schema.Class)
			continue
		}

		f, err := parseFeature(line, needsID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if f.Kind() == schema.KindID {
			needsID = false
		}
		features = append(features, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}

	features, err := moveClassLast(features)
	if err != nil {
		return nil, err
	}

	return schema.New(features...), nil
}

// parseFeature parses one 'name: value1, value2, ...' declaration. needsID
// reports whether the schema still lacks an ID feature, in which case this
// declaration becomes it regardless of its value list.
func parseFeature(line string, needsID bool) (schema.Feature, error) {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return schema.Feature{}, errs.ErrNoFeatureName
	}
	name := strings.TrimSpace(line[:colon])
	values := SplitValues(line[colon+1:])

	switch {
	case needsID:
		return schema.NewFeatureWithDomain(name, schema.KindID, values)
	case len(values) == 1 && strings.HasPrefix(values[0], "continuous"):
		return schema.NewFeature(name, schema.KindContinuous)
	case isBinaryValues(values):
		return schema.NewFeature(name, schema.KindBinary)
	default:
		return schema.NewFeatureWithDomain(name, schema.KindNominal, values)
	}
}

// isBinaryValues reports whether the value list is exactly the pair {0, 1}.
func isBinaryValues(values []string) bool {
	if len(values) != 2 {
		return false
	}

	return (values[0] == "0" && values[1] == "1") || (values[0] == "1" && values[1] == "0")
}

// moveClassLast removes the first class feature from the sequence and
// appends it at the end.
func moveClassLast(features []schema.Feature) ([]schema.Feature, error) {
	idx := -1
	for i, f := range features {
		if f.Equal(schema.Class) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errs.ErrNoClassLine
	}
	features = append(features[:idx], features[idx+1:]...)

	return append(features, schema.Class), nil
}
