package gcodec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const NameZstd = "zstd"

var zstdMagic = []byte{'Z', 'S', 'T', 'D'}

// Zstd compresses at the default level. The encoder and decoder are shared;
// both are safe for concurrent use.
type Zstd struct{}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("gcodec: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		panic("gcodec: zstd decoder initialization failed: " + err.Error())
	}
}

func (Zstd) Name() string {
	return NameZstd
}

func (Zstd) Compress(data []byte) ([]byte, error) {
	return encodeFrame(zstdMagic, len(data), zstdEncoder.EncodeAll(data, nil)), nil
}

func (Zstd) Decompress(data []byte) ([]byte, error) {
	f, err := decodeFrame(NameZstd, data, zstdMagic)
	if err != nil {
		return nil, err
	}
	result, err := zstdDecoder.DecodeAll(f.payload, make([]byte, 0, f.rawSize))
	if err != nil {
		return nil, ErrCompression{Codec: NameZstd, Op: OpDecompress, Err: err}
	}
	if len(result) != f.rawSize {
		return nil, ErrCompression{Codec: NameZstd, Op: OpDecompress, Err: fmt.Errorf("got %d bytes, expected %d", len(result), f.rawSize)}
	}
	return result, nil
}
