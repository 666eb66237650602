package densetree

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/groupbuf/compress"
	"github.com/arloliu/groupbuf/endian"
	"github.com/arloliu/groupbuf/errs"
	"github.com/arloliu/groupbuf/format"
	"github.com/arloliu/groupbuf/internal/hash"
	"github.com/arloliu/groupbuf/internal/options"
)

// Dump header layout, little-endian:
//
//	[0:2)   magic (0xDE7E)
//	[2:3)   format version (1)
//	[3:4)   compression type
//	[4:8)   uncompressed payload length
//	[8:16)  xxHash64 checksum of the uncompressed payload
//	[16:...] compressed payload
const (
	dumpMagic   uint16 = 0xDE7E
	dumpVersion byte   = 1

	dumpHeaderSize = 16
)

type dumpConfig struct {
	compression format.CompressionType
}

// DumpOption represents a functional option for configuring a dump.
type DumpOption = options.Option[*dumpConfig]

// WithCompression selects the codec applied to the dump payload.
// The default is no compression.
func WithCompression(c format.CompressionType) DumpOption {
	return options.New(func(cfg *dumpConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// Dump writes the buffer to w in the dump format: a fixed header carrying
// the compression type, the uncompressed length, and an xxHash64 checksum,
// followed by the codec output. Load reverses it.
func (b *Buf) Dump(w io.Writer, opts ...DumpOption) error {
	cfg := &dumpConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	payload := b.buf.Bytes()
	if len(payload) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", errs.ErrBufferTooLarge, len(payload))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress dump payload: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, dumpHeaderSize)
	header = engine.AppendUint16(header, dumpMagic)
	header = append(header, dumpVersion, byte(cfg.compression))
	header = engine.AppendUint32(header, uint32(len(payload))) //nolint:gosec
	header = engine.AppendUint64(header, hash.Checksum(payload))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write dump header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("write dump payload: %w", err)
	}

	return nil
}

// Load reads a dump produced by Dump and returns the reconstructed buffer.
// All node offsets from before the dump stay valid against the result.
//
// Returns errs.ErrInvalidMagic, errs.ErrInvalidCompression,
// errs.ErrTruncatedDump, or errs.ErrChecksumMismatch when the data is not a
// well-formed dump.
func Load(r io.Reader) (*Buf, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	if len(data) < dumpHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrTruncatedDump, len(data), dumpHeaderSize)
	}

	engine := endian.GetLittleEndianEngine()
	if engine.Uint16(data[0:2]) != dumpMagic {
		return nil, fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, engine.Uint16(data[0:2]))
	}
	if data[2] != dumpVersion {
		return nil, fmt.Errorf("%w: unsupported dump version %d", errs.ErrInvalidMagic, data[2])
	}

	compression := format.CompressionType(data[3])
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, data[3])
	}

	payloadLen := engine.Uint32(data[4:8])
	checksum := engine.Uint64(data[8:16])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[dumpHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress dump payload: %w", err)
	}

	if uint32(len(payload)) != payloadLen { //nolint:gosec
		return nil, fmt.Errorf("%w: payload %d bytes, header says %d", errs.ErrTruncatedDump, len(payload), payloadLen)
	}
	if hash.Checksum(payload) != checksum {
		return nil, fmt.Errorf("%w: payload does not match header checksum", errs.ErrChecksumMismatch)
	}

	b := NewBuf()
	b.buf.MustWrite(payload)

	return b, nil
}
