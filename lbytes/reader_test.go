package lbytes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesReader_ReadLong(t *testing.T) {
	reader := Reader{
		Reader: *bytes.NewReader(
			[]byte{
				0x20, 0, 0, 0, 0, 0, 0, 0,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				1, 2,
			},
		),
	}

	first, err := reader.ReadLong()
	assert.NoError(t, err)
	assert.Equal(t, int64(0x20), first)

	second, err := reader.ReadLong()
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), second)

	_, err = reader.ReadLong()
	assert.Error(t, err)
}

func TestBytesReader_ReadBytesShort(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	_, err := reader.ReadBytes(4)
	assert.Error(t, err)
}

func TestStringAt(t *testing.T) {
	bs := []byte{'b', '0', '1', 'f', 0, 0, 0, 0}

	assert.Equal(t, "b01f", StringAt(bs, 0, 8))
	assert.Equal(t, "01f", StringAt(bs, 1, 7))
	assert.Equal(t, "", StringAt(bs, 4, 4))
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize("record", make([]byte, 8), 8))

	err := CheckSize("record", make([]byte, 7), 8)
	var truncated ErrTruncatedRecord
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, ErrTruncatedRecord{Record: "record", Want: 8, Got: 7}, truncated)
}
