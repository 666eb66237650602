package compress

// ZstdCompressor favors compression ratio over speed, the right choice for
// archived dumps that are written once and rarely read.
//
// The implementation is chosen at build time: valyala/gozstd (cgo bindings to
// libzstd) when cgo is enabled, or the pure-Go klauspost/compress/zstd
// otherwise. The two produce interoperable Zstandard frames, so dumps written
// by one build decompress under the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
