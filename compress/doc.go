// Package compress provides the codecs used to read compressed C4.5
// dataset files.
//
// A dataset file may be stored compressed with its codec indicated by a
// trailing filename extension: 'iris.data.gz', 'iris.names.zst', and so on.
// The parser reads the whole file and hands the bytes to the codec matching
// the extension; plain files go through the no-op codec.
//
// # Supported codecs
//
//   - None: plain text files (no extension)
//   - Gzip: .gz files
//   - Zstd: .zst files (pure-Go decoder by default, cgo gozstd when available)
//   - S2: .s2 files
//   - LZ4: .lz4 files
//
// Codecs are symmetric (Compress and Decompress) so that tests and tools
// can produce compressed fixtures, but the parsing path only decompresses.
package compress
