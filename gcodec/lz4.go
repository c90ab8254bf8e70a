package gcodec

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const NameLZ4 = "lz4"

// LZ4 uses block mode. Incompressible data is stored as is under its own magic.
type LZ4 struct{}

var (
	lz4BlockMagic  = []byte{'L', 'Z', '4', 'B'}
	lz4StoredMagic = []byte{'L', 'Z', '4', 'S'}
)

func (LZ4) Name() string {
	return NameLZ4
}

func (LZ4) Compress(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, ErrCompression{Codec: NameLZ4, Op: OpCompress, Err: err}
	}
	if written == 0 || written >= len(data) {
		return encodeFrame(lz4StoredMagic, len(data), data), nil
	}
	return encodeFrame(lz4BlockMagic, len(data), destination[:written]), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	f, err := decodeFrame(NameLZ4, data, lz4BlockMagic, lz4StoredMagic)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(f.magic, lz4StoredMagic) {
		if len(f.payload) != f.rawSize {
			return nil, ErrCompression{Codec: NameLZ4, Op: OpDecompress, Err: fmt.Errorf("stored payload of %d bytes, expected %d", len(f.payload), f.rawSize)}
		}
		result := make([]byte, f.rawSize)
		copy(result, f.payload)
		return result, nil
	}

	destination := make([]byte, f.rawSize)
	read, err := lz4.UncompressBlock(f.payload, destination)
	if err != nil {
		return nil, ErrCompression{Codec: NameLZ4, Op: OpDecompress, Err: err}
	}
	if read != f.rawSize {
		return nil, ErrCompression{Codec: NameLZ4, Op: OpDecompress, Err: fmt.Errorf("got %d bytes, expected %d", read, f.rawSize)}
	}
	return destination, nil
}
