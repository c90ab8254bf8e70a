package balance

import (
	"bytes"
	"context"
	"encoding/hex"

	"github.com/StrikerX3/DreamNexus/balance/bentry"
	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/gcodec"
	"github.com/StrikerX3/DreamNexus/logging"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

type (
	Digest [32]byte
	// EntryInfo describes one block of an archive.
	EntryInfo struct {
		Index          int
		Offset         uint32
		CompressedSize int
		Size           int
		FloorCount     int
		Sections       []bentry.Section
		// Digest is the BLAKE3 hash of the decompressed container.
		Digest Digest
	}
	// Mismatch is an entry whose container changes when decoded and encoded again.
	Mismatch struct {
		Index    int
		Original Digest
		Rebuilt  Digest
	}
)

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func digest(bs []byte) Digest {
	return blake3.Sum256(bs)
}

type inspected struct {
	info    EntryInfo
	raw     []byte
	rebuilt []byte
}

func inspect(ctx context.Context, bin []byte, ent []byte, codec gcodec.Codec, workers int, rebuild bool) ([]inspected, error) {
	archive, err := OpenArchive(bin, ent)
	if err != nil {
		return nil, err
	}
	return ds.ParallelMap(ctx, archive.Blocks, workers, func(_ context.Context, index int, block []byte) (inspected, error) {
		raw, err := codec.Decompress(block)
		if err != nil {
			return inspected{}, ErrEntry{Index: index, Stage: StageDecompress, Err: err}
		}
		entry, err := bentry.Decode(raw)
		if err != nil {
			return inspected{}, ErrEntry{Index: index, Stage: StageDecode, Err: err}
		}
		result := inspected{
			info: EntryInfo{
				Index:          index,
				Offset:         archive.Offsets[index],
				CompressedSize: len(block),
				Size:           len(raw),
				FloorCount:     len(entry.FloorInfos),
				Sections:       entry.Present(),
				Digest:         digest(raw),
			},
			raw: raw,
		}
		if rebuild {
			result.rebuilt, err = bentry.Encode(*entry)
			if err != nil {
				return inspected{}, ErrEntry{Index: index, Stage: StageEncode, Err: err}
			}
		}
		return result, nil
	})
}

// Inspect decodes every entry of the archive and reports what it holds.
func Inspect(ctx context.Context, bin []byte, ent []byte, codec gcodec.Codec, workers int) ([]EntryInfo, error) {
	results, err := inspect(ctx, bin, ent, codec, workers, false)
	if err != nil {
		return nil, errors.Wrap(err, "balance.Inspect error")
	}
	return lo.Map(results, func(r inspected, _ int) EntryInfo { return r.info }), nil
}

// Verify decodes and re-encodes every entry and reports those whose container
// bytes differ from the archive's.
func Verify(ctx context.Context, bin []byte, ent []byte, codec gcodec.Codec, workers int) ([]Mismatch, error) {
	results, err := inspect(ctx, bin, ent, codec, workers, true)
	if err != nil {
		return nil, errors.Wrap(err, "balance.Verify error")
	}
	changed := lo.Filter(results, func(r inspected, _ int) bool {
		return !bytes.Equal(r.raw, r.rebuilt)
	})
	mismatches := lo.Map(changed, func(r inspected, _ int) Mismatch {
		return Mismatch{Index: r.info.Index, Original: r.info.Digest, Rebuilt: digest(r.rebuilt)}
	})
	logging.Logger().Info("archive verified",
		zap.Int("entries", len(results)),
		zap.Int("mismatches", len(mismatches)),
	)
	return mismatches, nil
}
