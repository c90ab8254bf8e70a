package bfloor

import (
	"testing"

	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEntry(index int16) Entry {
	entry := New(index)
	entry.Short02 = -3
	entry.Event = "d010_p01"
	entry.TurnLimit = 1000
	entry.Short26 = 26
	entry.Short28 = 9999
	entry.DungeonMapDataInfoIndex = 12
	entry.NameID = 0x2C
	entry.Byte2D = 0x2D
	entry.Byte2E = 0x2E
	entry.Byte2F = 0x2F
	entry.Short30 = 0x30
	entry.Short32 = 0x32
	entry.Byte34 = 0x34
	entry.Byte35 = 0x35
	entry.ItemSetIndex = 7
	entry.InvitationIndex = 0x54
	entry.Byte55 = 0x55
	entry.Byte56 = 0x56
	entry.Byte57 = 0x57
	entry.Byte58 = 0x58
	entry.Weather = DungeonStatusIndex(4)
	entry.Bytes37to53 = lo.Times(Opaque37Width, func(i int) byte { return byte(0xA0 + i) })
	entry.Bytes5Ato61 = []byte{0xFF, 0, 1, 0xFE, 2, 0, 3, 0x80}
	return entry
}

func TestOpaqueWidths(t *testing.T) {
	// the two opaque ranges plus the typed fields cover the whole record
	assert.Equal(t, 29, Opaque37Width)
	assert.Equal(t, 8, Opaque5AWidth)
}

func TestEncodeEntry_Offsets(t *testing.T) {
	bs, err := EncodeEntry(createEntry(5))
	require.NoError(t, err)
	require.Len(t, bs, Size)

	assert.Equal(t, []byte{5, 0}, bs[0x00:0x02])
	assert.Equal(t, "d010_p01", lbytes.StringAt(bs, 0x04, EventWidth))
	assert.Equal(t, byte(0), bs[0x04+len("d010_p01")])
	assert.Equal(t, []byte{0xE8, 0x03}, bs[0x24:0x26])
	assert.Equal(t, byte(7), bs[0x36])
	assert.Equal(t, byte(0xA0), bs[0x37])
	assert.Equal(t, byte(0xA0+28), bs[0x53])
	assert.Equal(t, byte(0x54), bs[0x54])
	assert.Equal(t, byte(4), bs[0x59])
	assert.Equal(t, []byte{0xFF, 0, 1, 0xFE, 2, 0, 3, 0x80}, bs[0x5A:0x62])
}

func TestEntry_RoundTrip(t *testing.T) {
	in := createEntry(3)
	bs, err := EncodeEntry(in)
	require.NoError(t, err)

	out, err := DecodeEntry(bs)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestNew_RoundTrip(t *testing.T) {
	in := New(0)
	bs, err := EncodeEntry(in)
	require.NoError(t, err)
	assert.Equal(t, lbytes.CreateZeroBytes(Size), bs)

	out, err := DecodeEntry(bs)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestBlock_RoundTrip(t *testing.T) {
	in := lo.Times(3, func(i int) Entry { return createEntry(int16(i)) })
	bs, err := EncodeBlock(in)
	require.NoError(t, err)
	require.Len(t, bs, CalculateBlockSize(3))

	// alignment padding after the records is ignored
	padded := append(bs, lbytes.CreateZeroBytes(10)...)
	out, err := DecodeBlock(padded)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeEntry_Truncated(t *testing.T) {
	_, err := DecodeEntry(make([]byte, Size-1))
	var truncated lbytes.ErrTruncatedRecord
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, Size, truncated.Want)
}

func TestEncodeEntry_EventTooLong(t *testing.T) {
	entry := New(0)
	entry.Event = "this label is far longer than thirty-two bytes"
	_, err := EncodeEntry(entry)
	var tooLong lbytes.ErrStringTooLong
	assert.ErrorAs(t, err, &tooLong)
}
