package compress

// ZstdCompressor handles '.zst' dataset files.
//
// Two implementations exist behind build tags: a pure-Go path using
// klauspost/compress/zstd (the default), and a cgo path using
// valyala/gozstd for builds where cgo is available.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
