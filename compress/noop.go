package compress

// NoOpCompressor passes payloads through unchanged. It backs
// format.CompressionNone and doubles as a baseline for benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
// The result aliases the input; callers must not modify one while using the
// other.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
// The result aliases the input; callers must not modify one while using the
// other.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
