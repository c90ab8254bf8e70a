package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadLong() (int64, error) {
	bs, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint64(bs)
	return int64(result), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	// a short read is an error here: a record is never partially present
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// Int16At and the other *At helpers read at a fixed offset of bs.
// Callers check the record width up front, see CheckSize.
func Int16At(bs []byte, offset int) int16 {
	return int16(binary.LittleEndian.Uint16(bs[offset:]))
}

func Int32At(bs []byte, offset int) int32 {
	return int32(binary.LittleEndian.Uint32(bs[offset:]))
}

func Int64At(bs []byte, offset int) int64 {
	return int64(binary.LittleEndian.Uint64(bs[offset:]))
}

// StringAt reads a fixed-width ASCII field, trimming the trailing zero bytes.
func StringAt(bs []byte, offset int, width int) string {
	return string(bytes.TrimRight(bs[offset:offset+width], "\u0000"))
}

// CheckSize fails with ErrTruncatedRecord when bs cannot hold a record of size bytes.
func CheckSize(record string, bs []byte, size int) error {
	if len(bs) < size {
		return ErrTruncatedRecord{
			Record: record,
			Want:   size,
			Got:    len(bs),
		}
	}
	return nil
}
