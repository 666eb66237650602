// Package compress provides the compression codecs used by dense tree dumps.
//
// A dump payload is compressed in one shot after the tree buffer is encoded;
// the codec is selected by a format.CompressionType byte in the dump header:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// Zstd has two implementations selected at build time: valyala/gozstd when
// cgo is available, and the pure-Go klauspost/compress/zstd otherwise. Both
// produce interoperable Zstandard frames.
//
// All codecs are stateless values safe for concurrent use; internal encoder
// and decoder state is pooled.
package compress
