package c45

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/c45/compress"
	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/parser"
	"github.com/arloliu/c45/schema"
	"github.com/stretchr/testify/require"
)

const exampleNames = `// Example dataset schema
0, 1.

id: p1, p2, p3, p4, p5, p6, p7, p8, p9, p10.
smelly: 0, 1.
color: red, green, blue.
weight: continuous.
texture: smooth, rough, bumpy.
`

const exampleData = `p1, 0, red, 1.2, smooth, 0.
p2, 1, green, 3.4, rough, 1.
p3, 0, blue, 0.5, smooth, 0.
p4, 1, red, 2.2, bumpy, 1.
p5, 0, green, 1.1, rough, 0.
p6, 1, blue, 4.0, smooth, 1.
p7, 0, red, 0.9, bumpy, 0.
p8, 1, ?, 2.5, ?, 1.
p9, 0, blue, 1.7, smooth, 0.
p10, 1, green, 3.3, rough, 1.
`

func writeExampleDataset(t *testing.T, root string) {
	t.Helper()

	dir := filepath.Join(root, "nested", "datasets")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example.names"), []byte(exampleNames), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example.data"), []byte(exampleData), 0o644))
}

func TestParseExampleDataset(t *testing.T) {
	root := t.TempDir()
	writeExampleDataset(t, root)

	examples, err := Parse("example", root)
	require.NoError(t, err)
	require.Equal(t, 10, examples.Len())

	s := examples.Schema()
	require.Equal(t, 6, s.Len())
	wantKinds := []schema.Kind{
		schema.KindID,
		schema.KindBinary,
		schema.KindNominal,
		schema.KindContinuous,
		schema.KindNominal,
		schema.KindClass,
	}
	for i, kind := range wantKinds {
		require.Equal(t, kind, s.At(i).Kind(), "feature %d", i)
	}

	// p8 has unknown texture
	require.True(t, examples.At(7).Value(4).IsMissing())
}

func TestParseMissingFiles(t *testing.T) {
	_, err := Parse("absent", t.TempDir())
	require.ErrorIs(t, err, errs.ErrSchemaFileNotFound)
}

func TestParseSchemaPhaseError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.names"), []byte("id: a, b.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.data"), []byte("a, 0.\n"), 0o644))

	_, err := Parse("bad", root)
	require.ErrorIs(t, err, errs.ErrNoClassLine)
	require.Contains(t, err.Error(), "parsing schema")
}

func TestParseWithDiagnosticSink(t *testing.T) {
	root := t.TempDir()
	writeExampleDataset(t, root)
	dir := filepath.Join(root, "nested", "datasets")

	// Corrupt one row
	dirty := exampleData + "p11, 1, red\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example.data"), []byte(dirty), 0o644))

	var diags []parser.Diagnostic
	examples, err := Parse("example", root, parser.WithDiagnosticSink(func(d parser.Diagnostic) {
		diags = append(diags, d)
	}))
	require.NoError(t, err)
	require.Equal(t, 10, examples.Len())
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, errs.ErrFieldCountMismatch)
}

func TestParseCompressedDataset(t *testing.T) {
	root := t.TempDir()

	gz, err := compress.GetCodec(compress.TypeGzip)
	require.NoError(t, err)
	zst, err := compress.GetCodec(compress.TypeZstd)
	require.NoError(t, err)

	names, err := gz.Compress([]byte(exampleNames))
	require.NoError(t, err)
	data, err := zst.Compress([]byte(exampleData))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "example.names.gz"), names, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "example.data.zst"), data, 0o644))

	examples, err := Parse("example", root)
	require.NoError(t, err)
	require.Equal(t, 10, examples.Len())
}

func TestParseToFloat(t *testing.T) {
	root := t.TempDir()
	writeExampleDataset(t, root)

	examples, err := Parse("example", root)
	require.NoError(t, err)

	rows, err := examples.ToFloat(nil)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	// First row: p1 → id index 0, smelly false, red → 0, 1.2, smooth → 0, class false
	want := []float64{0, 0, 0, 1.2, 0, 0}
	for i, cell := range rows[0] {
		require.True(t, cell.Valid)
		require.Equal(t, want[i], cell.Value)
	}

	// p8's unknown texture stays a gap
	require.False(t, rows[7][4].Valid)
}
