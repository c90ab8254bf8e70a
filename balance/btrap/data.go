// Package btrap encodes the per-floor trap weights of a dungeon, starting at
// the first trap item index.
package btrap

import (
	"github.com/samber/lo"
)

type (
	TrapWeights struct {
		Records []Record `json:"records"`
	}
	Record struct {
		Entries []Entry `json:"entries"`
	}
	Entry struct {
		Index  int16 `json:"index"`
		Weight int16 `json:"weight"`
		// Int04 is zero in every known file; it is not validated.
		Int04 int32 `json:"int_04"`
	}
)

const (
	RecordCount      = 99
	EntriesPerRecord = 33
	EntrySize        = 8
	RecordSize       = EntriesPerRecord * EntrySize
	tableName        = "TrapWeights"
)

func NewRecord() Record {
	return Record{Entries: make([]Entry, EntriesPerRecord)}
}

func New() *TrapWeights {
	return &TrapWeights{
		Records: lo.Times(RecordCount, func(int) Record { return NewRecord() }),
	}
}
