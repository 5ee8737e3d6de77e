package compress

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Type identifies a compression codec.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeGzip Type = 0x2 // TypeGzip represents gzip compression.
	TypeZstd Type = 0x3 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x4 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x5 // TypeLZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeGzip:
		return "Gzip"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Ext returns the filename extension marking this codec, including the
// leading dot, or "" for TypeNone.
func (t Type) Ext() string {
	switch t {
	case TypeGzip:
		return ".gz"
	case TypeZstd:
		return ".zst"
	case TypeS2:
		return ".s2"
	case TypeLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// Compressor compresses a whole dataset file held in memory.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a whole dataset file held in memory.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result, or an error if the data is corrupted or was compressed with
	// an incompatible codec.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeGzip: NewGzipCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// DetectType returns the codec indicated by the filename's trailing
// extension, defaulting to TypeNone for unrecognized or absent extensions.
func DetectType(filename string) Type {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return TypeGzip
	case ".zst":
		return TypeZstd
	case ".s2":
		return TypeS2
	case ".lz4":
		return TypeLZ4
	default:
		return TypeNone
	}
}
