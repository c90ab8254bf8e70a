// Package btable encodes the "indexed record table" shape shared by the trap
// weights and the reserved table: fixed-size records written back to back,
// with a sub-header holding the record count and one pointer per record.
package btable

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/pkg/errors"
)

const (
	subHeaderCount    = 0x00
	subHeaderPointers = 0x08
)

type ErrRecordSize struct {
	Table  string
	Record int
	Want   int
	Got    int
}

func (r ErrRecordSize) Error() string {
	return fmt.Sprintf("%s record %d is %d bytes; expected %d", r.Table, r.Record, r.Got, r.Want)
}

// Encode writes records into a new container. Every record must be recordSize bytes.
func Encode(table string, records [][]byte, recordSize int) ([]byte, error) {
	builder := sir0.NewBuilder()
	positions := make([]int64, 0, len(records))
	for i, record := range records {
		if len(record) != recordSize {
			return nil, ErrRecordSize{Table: table, Record: i, Want: recordSize, Got: len(record)}
		}
		positions = append(positions, builder.Write(record))
	}

	builder.Align(sir0.Alignment)
	builder.SetSubHeader()
	builder.WriteInt64(int64(len(records)))
	for _, position := range positions {
		builder.WritePointer(position)
	}

	bs, err := builder.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "btable.Encode error: %s", table)
	}
	return bs, nil
}

// Decode returns the raw bytes of every record, located through its pointer.
func Decode(table string, bs []byte, recordSize int) ([][]byte, error) {
	container, err := sir0.Parse(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "btable.Decode error: %s", table)
	}
	count, err := container.SubHeaderInt64(subHeaderCount)
	if err != nil {
		return nil, errors.Wrapf(err, "btable.Decode error: %s count", table)
	}
	if count < 0 || count > int64(len(container.SubHeader()))/sir0.PointerSize {
		return nil, sir0.ErrMalformed{Reason: fmt.Sprintf("%s count %d does not fit in the sub-header", table, count)}
	}

	pointers := ds.MakeRange[int64](subHeaderPointers, subHeaderPointers+count*sir0.PointerSize, sir0.PointerSize)
	records := make([][]byte, 0, count)
	for i, pointer := range pointers {
		offset, err := container.SubHeaderInt64(pointer)
		if err != nil {
			return nil, errors.Wrapf(err, "btable.Decode error: %s pointer %d", table, i)
		}
		record, err := container.Slice(offset, int64(recordSize))
		if err != nil {
			return nil, errors.Wrapf(err, "btable.Decode error: %s record %d", table, i)
		}
		records = append(records, record)
	}
	return records, nil
}
