package bfloor

import (
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

func EncodeEntry(entry Entry) ([]byte, error) {
	bs, err := lbytes.EncodeLayout(entry.layout())
	if err != nil {
		return nil, errors.Wrapf(err, "bfloor.EncodeEntry error at floor %d", entry.Index)
	}
	return bs, nil
}

// EncodeBlock writes the records back to back, without padding between them.
func EncodeBlock(entries []Entry) ([]byte, error) {
	bs := make([]byte, 0, CalculateBlockSize(len(entries)))
	for _, entry := range entries {
		entryBytes, err := EncodeEntry(entry)
		if err != nil {
			return nil, err
		}
		bs = append(bs, entryBytes...)
	}
	return bs, nil
}

func CalculateBlockSize(numEntries int) int {
	return numEntries * Size
}
