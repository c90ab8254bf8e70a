package balance

import (
	"context"

	"github.com/StrikerX3/DreamNexus/balance/bentry"
	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/gcodec"
	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/StrikerX3/DreamNexus/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Build encodes and compresses every entry, then concatenates the compressed
// blocks, each padded with zeros to a 16-byte boundary. ent holds the offset of
// every block followed by the total length of bin.
func (d *DungeonBalance) Build(ctx context.Context, codec gcodec.Codec, workers int) (bin []byte, ent []byte, err error) {
	log := logging.Logger().With(zap.String("codec", codec.Name()))

	blocks, err := ds.ParallelMap(ctx, d.Entries, workers, func(_ context.Context, index int, entry bentry.Entry) ([]byte, error) {
		raw, err := bentry.Encode(entry)
		if err != nil {
			return nil, ErrEntry{Index: index, Stage: StageEncode, Err: err}
		}
		compressed, err := codec.Compress(raw)
		if err != nil {
			return nil, ErrEntry{Index: index, Stage: StageCompress, Err: err}
		}
		log.Debug("entry built",
			zap.Int("index", index),
			zap.Int("size", len(raw)),
			zap.Int("compressed", len(compressed)),
		)
		return compressed, nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "balance.Build error")
	}

	offsets := make([]uint32, 0, len(blocks)+1)
	offsets = append(offsets, 0)
	size := 0
	for _, block := range blocks {
		size += len(block) + int(ds.PaddingLength(len(block), Alignment))
	}
	bin = make([]byte, 0, size)
	for _, block := range blocks {
		bin = append(bin, block...)
		bin = append(bin, lbytes.CreateZeroBytes(ds.PaddingLength(len(bin), Alignment))...)
		offsets = append(offsets, uint32(len(bin)))
	}

	log.Info("archive built",
		zap.Int("entries", len(blocks)),
		zap.Int("size", len(bin)),
	)
	return bin, EncodeIndex(offsets), nil
}
