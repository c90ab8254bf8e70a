package btrap

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
	return fmt.Sprintf("trap weight record %d has %d entries; expected %d", r.Record, r.Got, EntriesPerRecord)
}

func (e *Entry) layout() lbytes.Layout {
	return lbytes.Layout{
		Name: "TrapWeightEntry",
		Size: EntrySize,
		Fields: []lbytes.Field{
			lbytes.Int16("index", 0x00, &e.Index),
			lbytes.Int16("weight", 0x02, &e.Weight),
			lbytes.Int32("int_04", 0x04, &e.Int04),
		},
	}
}

func EncodeEntry(entry Entry) ([]byte, error) {
	return lbytes.EncodeLayout(entry.layout())
}

func EncodeRecord(index int, record Record) ([]byte, error) {
	if len(record.Entries) != EntriesPerRecord {
		return nil, ErrRecordWidth{Record: index, Got: len(record.Entries)}
	}
	bs := make([]byte, 0, RecordSize)
	for _, entry := range record.Entries {
		entryBytes, err := EncodeEntry(entry)
		if err != nil {
			return nil, err
		}
		bs = append(bs, entryBytes...)
	}
	return bs, nil
}

func Encode(weights TrapWeights) ([]byte, error) {
	records := make([][]byte, 0, len(weights.Records))
	for i, record := range weights.Records {
		bs, err := EncodeRecord(i, record)
		if err != nil {
			return nil, errors.Wrap(err, "btrap.Encode error")
		}
		records = append(records, bs)
	}
	return btable.Encode(tableName, records, RecordSize)
}
