package persistence

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"movie-alert/internal/persistence/interfaces"
	"movie-alert/internal/structures"
)

// zstdMagic prefixes every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdCompression compresses only when enabled but always decompresses zstd
// frames, so flipping persistence.compress never strands an existing file.
type ZstdCompression struct {
	enabled bool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	if !z.enabled {
		return val, nil
	}
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	if !bytes.HasPrefix(val, zstdMagic) {
		return val, nil
	}
	return z.decoder.DecodeAll(val, nil)
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

func NewZstdCompressor(enabled bool) (*ZstdCompression, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{enabled: enabled, encoder: encoder, decoder: decoder}, nil
}

func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	return NewZstdCompressor(conf.Persistence.Compress)
}
