package bdata4

import (
	"github.com/StrikerX3/DreamNexus/balance/btable"
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

func DecodeRecord(bs []byte) (*Record, error) {
	if err := lbytes.CheckSize("DataEntry4Record", bs, RecordSize); err != nil {
		return nil, err
	}
	record := Record{Entries: make([]Entry, EntriesPerRecord)}
	for i := range record.Entries {
		entry := &record.Entries[i]
		if err := lbytes.DecodeLayout(bs[i*EntrySize:(i+1)*EntrySize], entry.layout()); err != nil {
			return nil, err
		}
	}
	return &record, nil
}

func Decode(bs []byte) (*DataEntry4, error) {
	records, err := btable.Decode(tableName, bs, RecordSize)
	if err != nil {
		return nil, errors.Wrap(err, "bdata4.Decode error")
	}
	data := DataEntry4{Records: make([]Record, 0, len(records))}
	for i, recordBytes := range records {
		record, err := DecodeRecord(recordBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "bdata4.Decode error at record %d", i)
		}
		data.Records = append(data.Records, *record)
	}
	return &data, nil
}
