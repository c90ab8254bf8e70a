// Package balance reads and writes the dungeon balance archive: a data blob of
// independently compressed entries and an index of their offsets.
package balance

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/balance/bentry"
	"github.com/samber/lo"
)

type (
	// DungeonBalance holds one entry per dungeon, in dungeon index order.
	DungeonBalance struct {
		Entries []bentry.Entry `json:"entries"`
	}
	Stage string
	// ErrEntry locates a failure at one entry of the archive. Section level
	// detail is available through bentry.ErrSectionEncode and
	// bentry.ErrSectionDecode with errors.As.
	ErrEntry struct {
		Index int
		Stage Stage
		Err   error
	}
)

const (
	StageEncode     Stage = "encode"
	StageCompress   Stage = "compress"
	StageDecompress Stage = "decompress"
	StageDecode     Stage = "decode"
	// Alignment of each compressed block in the data blob.
	Alignment = 16
)

func (r ErrEntry) Error() string {
	return fmt.Sprintf("entry %d: %s: %v", r.Index, r.Stage, r.Err)
}

func (r ErrEntry) Unwrap() error {
	return r.Err
}

// New creates a set of dungeonCount entries without floors or nested sections.
func New(dungeonCount int) *DungeonBalance {
	return &DungeonBalance{
		Entries: lo.Times(dungeonCount, func(int) bentry.Entry { return *bentry.New(0) }),
	}
}
