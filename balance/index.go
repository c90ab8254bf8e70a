package balance

import (
	"encoding/binary"
	"fmt"

	"github.com/StrikerX3/DreamNexus/lbytes"
)

// ErrMalformedIndex is returned for an index file that cannot describe the data blob.
type ErrMalformedIndex struct {
	Reason string
}

func (r ErrMalformedIndex) Error() string {
	return "malformed archive index: " + r.Reason
}

const indexValueSize = 4

// EncodeIndex writes offsets as little-endian uint32 values.
func EncodeIndex(offsets []uint32) []byte {
	bs := make([]byte, 0, len(offsets)*indexValueSize)
	for _, offset := range offsets {
		bs = append(bs, lbytes.EncodeValueUint32(offset)...)
	}
	return bs
}

// ParseIndex reads an index of N+1 offsets for N entries. The offsets must
// start at 0 and never decrease.
func ParseIndex(ent []byte) ([]uint32, error) {
	if len(ent)%indexValueSize != 0 {
		return nil, ErrMalformedIndex{Reason: fmt.Sprintf("length %d is not a multiple of %d", len(ent), indexValueSize)}
	}
	if len(ent) == 0 {
		return nil, ErrMalformedIndex{Reason: "no offsets"}
	}
	offsets := make([]uint32, 0, len(ent)/indexValueSize)
	for i := 0; i < len(ent); i += indexValueSize {
		offset := binary.LittleEndian.Uint32(ent[i:])
		if len(offsets) == 0 && offset != 0 {
			return nil, ErrMalformedIndex{Reason: fmt.Sprintf("first offset is %#x, not 0", offset)}
		}
		if len(offsets) > 0 && offset < offsets[len(offsets)-1] {
			return nil, ErrMalformedIndex{Reason: fmt.Sprintf("offset %d (%#x) is smaller than the one before it", len(offsets), offset)}
		}
		offsets = append(offsets, offset)
	}
	return offsets, nil
}

// Archive is a data blob split into its compressed entries.
type Archive struct {
	Offsets []uint32
	Blocks  [][]byte
}

// OpenArchive validates the index against the blob and slices out every block.
// Blocks keep the alignment padding that follows them.
func OpenArchive(bin []byte, ent []byte) (*Archive, error) {
	offsets, err := ParseIndex(ent)
	if err != nil {
		return nil, err
	}
	if last := offsets[len(offsets)-1]; int64(last) != int64(len(bin)) {
		return nil, ErrMalformedIndex{Reason: fmt.Sprintf("last offset %#x does not match data length %#x", last, len(bin))}
	}
	blocks := make([][]byte, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		blocks = append(blocks, bin[offsets[i]:offsets[i+1]])
	}
	return &Archive{Offsets: offsets, Blocks: blocks}, nil
}

func (a Archive) Len() int {
	return len(a.Blocks)
}
