package lbytes

import (
	"encoding/binary"
	"fmt"
)

type (
	ErrTruncatedRecord struct {
		Record string
		Want   int
		Got    int
	}
	ErrStringTooLong struct {
		Key   string
		Width int
		Value string
	}
	ErrOpaqueLength struct {
		Key   string
		Width int
		Got   int
	}
)

func (r ErrTruncatedRecord) Error() string {
	return fmt.Sprintf(
		`truncated record "%s": need %d bytes, got %d`,
		r.Record, r.Want, r.Got,
	)
}

func (r ErrStringTooLong) Error() string {
	return fmt.Sprintf(
		`value "%s" of field "%s" does not fit in %d bytes`,
		r.Value, r.Key, r.Width,
	)
}

func (r ErrOpaqueLength) Error() string {
	return fmt.Sprintf(
		`opaque field "%s" must hold %d bytes; got %d`,
		r.Key, r.Width, r.Got,
	)
}

func EncodeValueUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeValueLong(value int64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, uint64(value))
	return bs
}

// EncodeValueString right-pads value with zero bytes to exactly width bytes.
func EncodeValueString(key string, value string, width int) ([]byte, error) {
	if len(value) > width {
		return nil, ErrStringTooLong{
			Key:   key,
			Width: width,
			Value: value,
		}
	}
	bs := CreateZeroBytes(width)
	copy(bs, value)
	return bs, nil
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}

func CreateFillBytes(n int, fill byte) []byte {
	bs := make([]byte, n)
	if fill == 0 {
		return bs
	}
	for i := range bs {
		bs[i] = fill
	}
	return bs
}
