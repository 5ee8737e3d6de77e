package parser

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/c45/compress"
	"github.com/arloliu/c45/dataset"
	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/schema"
)

// codecExts lists the recognized compressed-file suffixes, tried after the
// plain filename.
var codecExts = []compress.Type{
	compress.TypeGzip,
	compress.TypeZstd,
	compress.TypeS2,
	compress.TypeLZ4,
}

// FindPair locates the 'base.names' and 'base.data' files anywhere under
// root, in either plain or compressed form ('base.data.gz' and friends).
//
// The walk visits directories in lexical order and the first match for each
// file wins; duplicates in other subdirectories are ignored.
//
// Returns:
//   - string: Path of the schema file.
//   - string: Path of the data file.
//   - error: errs.ErrSchemaFileNotFound or errs.ErrDataFileNotFound when a
//     file is missing, or a walk error.
func FindPair(base, root string) (string, string, error) {
	namesPath, err := findFile(base+".names", root)
	if err != nil {
		return "", "", err
	}
	if namesPath == "" {
		return "", "", fmt.Errorf("%w: %s.names under %s", errs.ErrSchemaFileNotFound, base, root)
	}

	dataPath, err := findFile(base+".data", root)
	if err != nil {
		return "", "", err
	}
	if dataPath == "" {
		return "", "", fmt.Errorf("%w: %s.data under %s", errs.ErrDataFileNotFound, base, root)
	}

	return namesPath, dataPath, nil
}

// findFile walks root looking for name or a compressed variant of it.
// Returns "" when nothing matches.
func findFile(name, root string) (string, error) {
	candidates := make(map[string]struct{}, len(codecExts)+1)
	candidates[name] = struct{}{}
	for _, t := range codecExts {
		candidates[name+t.Ext()] = struct{}{}
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := candidates[d.Name()]; ok {
			found = path
			return fs.SkipAll
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching %s: %w", root, err)
	}

	return found, nil
}

// ReadFile reads a dataset file into memory, transparently decompressing it
// when the filename carries a codec extension.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compress.DetectType(path))
	if err != nil {
		return nil, err
	}

	content, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}

	return content, nil
}

// ParseNamesFile reads and parses a '.names' file (plain or compressed).
func ParseNamesFile(path string) (*schema.Schema, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseNames(bytes.NewReader(content))
}

// ParseDataFile reads and parses a '.data' file (plain or compressed)
// against the given schema.
func ParseDataFile(path string, s *schema.Schema, opts ...Option) (*dataset.ExampleSet, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseData(bytes.NewReader(content), s, opts...)
}
