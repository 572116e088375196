package storage

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// markerZstd prefixes compressed snapshots. Plain snapshots are JSON
// and always start with '[' or 'n', so the two never collide.
const markerZstd byte = 0x01

// DefaultCompressThreshold is the JSON size above which snapshots are compressed.
const DefaultCompressThreshold = 4 * 1024

// CodecConfig configures snapshot encoding.
type CodecConfig struct {
	Compress  bool
	Threshold int // bytes
}

// Codec turns collections into stored bytes and back.
// Decoding understands both forms whatever Compress is set to, so the
// setting can change without rewriting existing data.
type Codec struct {
	compress  bool
	threshold int
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
}

// NewCodec creates a codec.
func NewCodec(cfg CodecConfig) (*Codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultCompressThreshold
	}

	return &Codec{
		compress:  cfg.Compress,
		threshold: threshold,
		encoder:   encoder,
		decoder:   decoder,
	}, nil
}

// Encode marshals v to JSON, compressing it when enabled and large enough.
func (c *Codec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	if !c.compress || len(data) <= c.threshold {
		return data, nil
	}

	out := make([]byte, 1, len(data)/2)
	out[0] = markerZstd
	return c.encoder.EncodeAll(data, out), nil
}

// Decode unmarshals a snapshot written by Encode into v.
func (c *Codec) Decode(data []byte, v any) error {
	if len(data) > 0 && data[0] == markerZstd {
		plain, err := c.decoder.DecodeAll(data[1:], nil)
		if err != nil {
			return fmt.Errorf("decompress snapshot: %w", err)
		}
		data = plain
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return nil
}

// Close releases the zstd decoder.
func (c *Codec) Close() {
	c.decoder.Close()
}
