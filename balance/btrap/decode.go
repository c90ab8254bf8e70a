package btrap

import (
	"github.com/StrikerX3/DreamNexus/balance/btable"
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(bs []byte) (*Entry, error) {
	entry := Entry{}
	if err := lbytes.DecodeLayout(bs, entry.layout()); err != nil {
		return nil, err
	}
	return &entry, nil
}

func DecodeRecord(bs []byte) (*Record, error) {
	if err := lbytes.CheckSize("TrapWeightRecord", bs, RecordSize); err != nil {
		return nil, err
	}
	record := Record{Entries: make([]Entry, 0, EntriesPerRecord)}
	for i := 0; i < EntriesPerRecord; i++ {
		entry, err := DecodeEntry(bs[i*EntrySize : (i+1)*EntrySize])
		if err != nil {
			return nil, err
		}
		record.Entries = append(record.Entries, *entry)
	}
	return &record, nil
}

func Decode(bs []byte) (*TrapWeights, error) {
	records, err := btable.Decode(tableName, bs, RecordSize)
	if err != nil {
		return nil, errors.Wrap(err, "btrap.Decode error")
	}
	weights := TrapWeights{Records: make([]Record, 0, len(records))}
	for i, recordBytes := range records {
		record, err := DecodeRecord(recordBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "btrap.Decode error at record %d", i)
		}
		weights.Records = append(weights.Records, *record)
	}
	return &weights, nil
}
