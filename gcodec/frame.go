package gcodec

import (
	"bytes"
	"fmt"

	"github.com/StrikerX3/DreamNexus/lbytes"
)

// Every codec output is framed by a 12-byte header: a 4-byte magic, the uint32
// decompressed length and the uint32 payload length. Blocks in an archive are
// followed by alignment padding; the payload length lets Decompress ignore it.
const frameHeaderSize = 12

// MaxDecompressedSize bounds the decompressed length a frame may declare. The
// largest entry container, with every nested table present, is about 2 MiB.
const MaxDecompressedSize = 64 << 20

type frame struct {
	magic   []byte
	rawSize int
	payload []byte
}

func encodeFrame(magic []byte, rawSize int, payload []byte) []byte {
	bs := make([]byte, 0, frameHeaderSize+len(payload))
	bs = append(bs, magic...)
	bs = append(bs, lbytes.EncodeValueUint32(uint32(rawSize))...)
	bs = append(bs, lbytes.EncodeValueUint32(uint32(len(payload)))...)
	return append(bs, payload...)
}

// decodeFrame reads the header of data and checks its magic is one of magics.
// Bytes after the payload are ignored.
func decodeFrame(codec string, data []byte, magics ...[]byte) (*frame, error) {
	if len(data) < frameHeaderSize {
		return nil, ErrCompression{Codec: codec, Op: OpDecompress, Err: fmt.Errorf("%d bytes is shorter than the header", len(data))}
	}
	magic := data[:4]
	known := false
	for _, m := range magics {
		if bytes.Equal(magic, m) {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrCompression{Codec: codec, Op: OpDecompress, Err: fmt.Errorf("invalid magic number %v", magic)}
	}
	rawSize := int(uint32(lbytes.Int32At(data, 4)))
	payloadSize := int(uint32(lbytes.Int32At(data, 8)))
	if rawSize > MaxDecompressedSize {
		return nil, ErrCompression{Codec: codec, Op: OpDecompress, Err: fmt.Errorf("declared size of %d bytes exceeds the limit of %d", rawSize, MaxDecompressedSize)}
	}
	if payloadSize > len(data)-frameHeaderSize {
		return nil, ErrCompression{Codec: codec, Op: OpDecompress, Err: fmt.Errorf("payload of %d bytes, only %d available", payloadSize, len(data)-frameHeaderSize)}
	}
	return &frame{
		magic:   magic,
		rawSize: rawSize,
		payload: data[frameHeaderSize : frameHeaderSize+payloadSize],
	}, nil
}
