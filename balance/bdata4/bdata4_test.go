package bdata4

import (
	"testing"

	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataEntry4_RoundTrip(t *testing.T) {
	in := New()
	for i := range in.Records {
		for j := range in.Records[i].Entries {
			in.Records[i].Entries[j] = Entry{
				Short00: int16(j),
				Short02: 60,
				Int04:   int32(i - j),
			}
		}
	}

	bs, err := Encode(*in)
	require.NoError(t, err)
	out, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Len(t, out.Records, RecordCount)
}

func TestDecodeRecord_Truncated(t *testing.T) {
	_, err := DecodeRecord(make([]byte, RecordSize-8))
	var truncated lbytes.ErrTruncatedRecord
	assert.ErrorAs(t, err, &truncated)
}

func TestEncode_RecordWidth(t *testing.T) {
	data := New()
	data.Records[0].Entries = nil
	_, err := Encode(*data)
	var width ErrRecordWidth
	assert.ErrorAs(t, err, &width)
}
