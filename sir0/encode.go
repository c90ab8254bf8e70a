package sir0

import (
	"encoding/binary"
	"sort"

	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

func NewBuilder() *Builder {
	return &Builder{
		data:            lbytes.CreateZeroBytes(HeaderSize),
		subHeaderOffset: -1,
	}
}

// Len is the current write position.
func (b *Builder) Len() int64 {
	return int64(len(b.data))
}

// Write appends bs and returns the position it was written at.
func (b *Builder) Write(bs []byte) int64 {
	position := b.Len()
	b.data = append(b.data, bs...)
	return position
}

func (b *Builder) WriteInt64(value int64) int64 {
	return b.Write(lbytes.EncodeValueLong(value))
}

// WritePointer appends target as a pointer and records its position for relocation.
func (b *Builder) WritePointer(target int64) int64 {
	position := b.WriteInt64(target)
	b.pointers = append(b.pointers, position)
	return position
}

// Pad appends fill bytes until the write position is a multiple of n.
func (b *Builder) Pad(n int64, fill byte) {
	padding := ds.PaddingLength(b.Len(), n)
	b.data = append(b.data, lbytes.CreateFillBytes(int(padding), fill)...)
}

// Align pads with zero bytes.
func (b *Builder) Align(n int64) {
	b.Pad(n, 0x00)
}

// SetSubHeader marks the current write position as the start of the sub-header.
func (b *Builder) SetSubHeader() {
	b.subHeaderOffset = b.Len()
}

// Build finalizes the container: it aligns, appends the pointer list and fills
// in the header. The builder must not be used afterwards.
func (b *Builder) Build() ([]byte, error) {
	if b.subHeaderOffset < HeaderSize {
		return nil, errors.New("sir0.Build error: sub-header offset was never set")
	}
	b.Align(Alignment)
	pointerOffset := b.Len()

	copy(b.data[offsetMagic:], MagicNumberBytes)
	binary.LittleEndian.PutUint64(b.data[offsetSubHdr:], uint64(b.subHeaderOffset))
	binary.LittleEndian.PutUint64(b.data[offsetPtrList:], uint64(pointerOffset))

	positions := append([]int64{offsetSubHdr, offsetPtrList}, b.pointers...)
	pointerList, err := EncodePointerList(positions)
	if err != nil {
		return nil, errors.Wrap(err, "sir0.Build error")
	}
	b.Write(pointerList)
	b.Align(Alignment)

	return b.data, nil
}

// EncodePointerList encodes relocation positions as deltas from the previous
// position, each delta in big-endian 7-bit groups with the high bit marking
// continuation, terminated by a zero byte.
func EncodePointerList(positions []int64) ([]byte, error) {
	sorted := make([]int64, len(positions))
	copy(sorted, positions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	bs := make([]byte, 0, len(sorted)+1)
	last := int64(0)
	for _, position := range sorted {
		delta := position - last
		if delta <= 0 {
			return nil, ErrMalformed{Reason: "duplicate or negative pointer position"}
		}
		bs = append(bs, encodeDelta(delta)...)
		last = position
	}
	return append(bs, 0x00), nil
}

func encodeDelta(delta int64) []byte {
	groups := []byte{byte(delta & 0x7F)}
	for delta >>= 7; delta > 0; delta >>= 7 {
		groups = append([]byte{byte(delta&0x7F) | 0x80}, groups...)
	}
	return groups
}
