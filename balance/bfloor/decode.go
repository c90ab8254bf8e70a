package bfloor

import (
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(bs []byte) (*Entry, error) {
	entry := Entry{}
	if err := lbytes.DecodeLayout(bs, entry.layout()); err != nil {
		return nil, errors.Wrap(err, "bfloor.DecodeEntry error")
	}
	return &entry, nil
}

// DecodeBlock reads contiguous records. Trailing bytes shorter than a record
// are alignment padding and are ignored.
func DecodeBlock(bs []byte) ([]Entry, error) {
	count := len(bs) / Size
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		entry, err := DecodeEntry(bs[i*Size : (i+1)*Size])
		if err != nil {
			return nil, errors.Wrapf(err, "bfloor.DecodeBlock error at floor %d", i)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}
