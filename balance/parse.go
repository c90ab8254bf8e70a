package balance

import (
	"context"

	"github.com/StrikerX3/DreamNexus/balance/bentry"
	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/gcodec"
	"github.com/StrikerX3/DreamNexus/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Parse splits bin along the offsets of ent, then decompresses and decodes
// every entry. Entry i of the result always comes from block i.
func Parse(ctx context.Context, bin []byte, ent []byte, codec gcodec.Codec, workers int) (*DungeonBalance, error) {
	archive, err := OpenArchive(bin, ent)
	if err != nil {
		return nil, errors.Wrap(err, "balance.Parse error")
	}

	entries, err := ds.ParallelMap(ctx, archive.Blocks, workers, func(_ context.Context, index int, block []byte) (bentry.Entry, error) {
		raw, err := codec.Decompress(block)
		if err != nil {
			return bentry.Entry{}, ErrEntry{Index: index, Stage: StageDecompress, Err: err}
		}
		entry, err := bentry.Decode(raw)
		if err != nil {
			return bentry.Entry{}, ErrEntry{Index: index, Stage: StageDecode, Err: err}
		}
		return *entry, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "balance.Parse error")
	}

	logging.Logger().Info("archive parsed",
		zap.String("codec", codec.Name()),
		zap.Int("entries", len(entries)),
		zap.Int("size", len(bin)),
	)
	return &DungeonBalance{Entries: entries}, nil
}
