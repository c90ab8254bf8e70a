// Package bdata4 encodes the fourth dungeon balance table. Its meaning is
// unknown; records are preserved verbatim.
package bdata4

import (
	"github.com/samber/lo"
)

type (
	DataEntry4 struct {
		Records []Record `json:"records"`
	}
	Record struct {
		Entries []Entry `json:"entries"`
	}
	Entry struct {
		Short00 int16 `json:"short_00"`
		Short02 int16 `json:"short_02"`
		Int04   int32 `json:"int_04"`
	}
)

const (
	RecordCount      = 45
	EntriesPerRecord = 46
	EntrySize        = 8
	RecordSize       = EntriesPerRecord * EntrySize
	tableName        = "DataEntry4"
)

func NewRecord() Record {
	return Record{Entries: make([]Entry, EntriesPerRecord)}
}

func New() *DataEntry4 {
	return &DataEntry4{
		Records: lo.Times(RecordCount, func(int) Record { return NewRecord() }),
	}
}
