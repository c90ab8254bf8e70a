package sir0

import (
	"bytes"
	"fmt"

	"github.com/StrikerX3/DreamNexus/lbytes"
)

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= len(MagicNumberBytes) && bytes.Equal(bs[:len(MagicNumberBytes)], MagicNumberBytes)
}

// Parse reads the header of a container. Pointers inside the data segment are
// not followed until asked for.
func Parse(bs []byte) (*Container, error) {
	if len(bs) < HeaderSize {
		return nil, ErrMalformed{Reason: fmt.Sprintf("%d bytes is shorter than the header", len(bs))}
	}
	reader := lbytes.NewBytesReader(bs[:HeaderSize])
	magic, err := reader.ReadBytes(offsetSubHdr)
	if err != nil {
		return nil, ErrMalformed{Reason: err.Error()}
	}
	if !IsValidMagicNumber(magic) {
		return nil, ErrMalformed{Reason: fmt.Sprintf(`invalid magic number: expected "%v", got "%v"`, MagicNumberBytes, magic[:4])}
	}
	subHeaderOffset, err := reader.ReadLong()
	if err != nil {
		return nil, ErrMalformed{Reason: err.Error()}
	}
	pointerOffset, err := reader.ReadLong()
	if err != nil {
		return nil, ErrMalformed{Reason: err.Error()}
	}
	if subHeaderOffset < HeaderSize || subHeaderOffset > int64(len(bs)) {
		return nil, ErrMalformed{Reason: fmt.Sprintf("sub-header offset %#x outside container", subHeaderOffset)}
	}
	if pointerOffset < subHeaderOffset || pointerOffset > int64(len(bs)) {
		return nil, ErrMalformed{Reason: fmt.Sprintf("pointer list offset %#x outside container", pointerOffset)}
	}
	return &Container{
		Data:            bs,
		SubHeaderOffset: subHeaderOffset,
		PointerOffset:   pointerOffset,
	}, nil
}

func (c *Container) SubHeader() []byte {
	return c.Data[c.SubHeaderOffset:c.PointerOffset]
}

// Slice returns length bytes at offset, without copying.
func (c *Container) Slice(offset int64, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > int64(len(c.Data)) {
		return nil, ErrMalformed{Reason: fmt.Sprintf("range %#x+%#x outside container of %#x bytes", offset, length, len(c.Data))}
	}
	return c.Data[offset : offset+length], nil
}

func (c *Container) Int64At(offset int64) (int64, error) {
	bs, err := c.Slice(offset, 8)
	if err != nil {
		return 0, err
	}
	return lbytes.Int64At(bs, 0), nil
}

func (c *Container) SubHeaderInt64(offset int64) (int64, error) {
	subHeader := c.SubHeader()
	if offset < 0 || offset+8 > int64(len(subHeader)) {
		return 0, ErrMalformed{Reason: fmt.Sprintf("sub-header read at %#x past its end %#x", offset, len(subHeader))}
	}
	return lbytes.Int64At(subHeader, int(offset)), nil
}

func (c *Container) SubHeaderInt32(offset int64) (int32, error) {
	subHeader := c.SubHeader()
	if offset < 0 || offset+4 > int64(len(subHeader)) {
		return 0, ErrMalformed{Reason: fmt.Sprintf("sub-header read at %#x past its end %#x", offset, len(subHeader))}
	}
	return lbytes.Int32At(subHeader, int(offset)), nil
}

// Pointers decodes the relocation list.
func (c *Container) Pointers() ([]int64, error) {
	return DecodePointerList(c.Data[c.PointerOffset:])
}

func DecodePointerList(bs []byte) ([]int64, error) {
	reader := lbytes.NewBytesReader(bs)
	positions := make([]int64, 0)
	last := int64(0)
	delta := int64(0)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, ErrMalformed{Reason: "pointer list is not terminated"}
		}
		delta = delta<<7 | int64(b&0x7F)
		if b&0x80 != 0 {
			continue
		}
		if delta == 0 {
			return positions, nil
		}
		last += delta
		positions = append(positions, last)
		delta = 0
	}
}
