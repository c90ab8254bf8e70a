package gcodec

import (
	"fmt"
)

const NameNone = "none"

// None stores entries uncompressed, framed like the other codecs.
type None struct{}

var noneMagic = []byte{'R', 'A', 'W', '0'}

func (None) Name() string {
	return NameNone
}

func (None) Compress(data []byte) ([]byte, error) {
	return encodeFrame(noneMagic, len(data), data), nil
}

func (None) Decompress(data []byte) ([]byte, error) {
	f, err := decodeFrame(NameNone, data, noneMagic)
	if err != nil {
		return nil, err
	}
	if len(f.payload) != f.rawSize {
		return nil, ErrCompression{Codec: NameNone, Op: OpDecompress, Err: fmt.Errorf("payload of %d bytes, expected %d", len(f.payload), f.rawSize)}
	}
	result := make([]byte, f.rawSize)
	copy(result, f.payload)
	return result, nil
}
