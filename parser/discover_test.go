package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/c45/compress"
	"github.com/arloliu/c45/errs"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func TestFindPair(t *testing.T) {
	root := t.TempDir()
	names := writeFile(t, root, "sub/dir/voting.names", []byte(testNames))
	data := writeFile(t, root, "sub/dir/voting.data", []byte(testData))

	gotNames, gotData, err := FindPair("voting", root)
	require.NoError(t, err)
	require.Equal(t, names, gotNames)
	require.Equal(t, data, gotData)
}

func TestFindPairMissingFiles(t *testing.T) {
	root := t.TempDir()

	_, _, err := FindPair("voting", root)
	require.ErrorIs(t, err, errs.ErrSchemaFileNotFound)

	writeFile(t, root, "voting.names", []byte(testNames))
	_, _, err = FindPair("voting", root)
	require.ErrorIs(t, err, errs.ErrDataFileNotFound)
}

func TestFindPairCompressedVariant(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "voting.names", []byte(testNames))

	codec, err := compress.GetCodec(compress.TypeGzip)
	require.NoError(t, err)
	compressed, err := codec.Compress([]byte(testData))
	require.NoError(t, err)
	data := writeFile(t, root, "voting.data.gz", compressed)

	_, gotData, err := FindPair("voting", root)
	require.NoError(t, err)
	require.Equal(t, data, gotData)
}

func TestReadFilePlain(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "voting.names", []byte(testNames))

	content, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte(testNames), content)
}

func TestReadFileCompressed(t *testing.T) {
	for _, typ := range []compress.Type{compress.TypeGzip, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(typ)
			require.NoError(t, err)
			compressed, err := codec.Compress([]byte(testData))
			require.NoError(t, err)

			root := t.TempDir()
			path := writeFile(t, root, "voting.data"+typ.Ext(), compressed)

			content, err := ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, []byte(testData), content)
		})
	}
}

func TestParseFilePair(t *testing.T) {
	root := t.TempDir()
	namesPath := writeFile(t, root, "voting.names", []byte(testNames))
	dataPath := writeFile(t, root, "voting.data", []byte(testData))

	s, err := ParseNamesFile(namesPath)
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())

	set, err := ParseDataFile(dataPath, s)
	require.NoError(t, err)
	require.Equal(t, 10, set.Len())
}
