package bdata4

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/balance/btable"
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/pkg/errors"
)

type ErrRecordWidth struct {
	Record int
	Got    int
}

func (r ErrRecordWidth) Error() string {
	return fmt.Sprintf("reserved record %d has %d entries; expected %d", r.Record, r.Got, EntriesPerRecord)
}

func (e *Entry) layout() lbytes.Layout {
	return lbytes.Layout{
		Name: "DataEntry4Entry",
		Size: EntrySize,
		Fields: []lbytes.Field{
			lbytes.Int16("short_00", 0x00, &e.Short00),
			lbytes.Int16("short_02", 0x02, &e.Short02),
			lbytes.Int32("int_04", 0x04, &e.Int04),
		},
	}
}

func EncodeRecord(index int, record Record) ([]byte, error) {
	if len(record.Entries) != EntriesPerRecord {
		return nil, ErrRecordWidth{Record: index, Got: len(record.Entries)}
	}
	bs := make([]byte, 0, RecordSize)
	for _, entry := range record.Entries {
		entryBytes, err := lbytes.EncodeLayout(entry.layout())
		if err != nil {
			return nil, err
		}
		bs = append(bs, entryBytes...)
	}
	return bs, nil
}

func Encode(data DataEntry4) ([]byte, error) {
	records := make([][]byte, 0, len(data.Records))
	for i, record := range data.Records {
		bs, err := EncodeRecord(i, record)
		if err != nil {
			return nil, errors.Wrap(err, "bdata4.Encode error")
		}
		records = append(records, bs)
	}
	return btable.Encode(tableName, records, RecordSize)
}
