package bwild

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/pkg/errors"
)

func DecodeStatsEntry(index int, bs []byte) (*StatsEntry, error) {
	entry := NewStatsEntry(index)
	if err := lbytes.DecodeLayout(bs, entry.layout()); err != nil {
		return nil, err
	}
	return &entry, nil
}

func DecodeSpawnEntry(bs []byte) (*SpawnEntry, error) {
	entry := SpawnEntry{}
	packed := uint8(0)
	if err := lbytes.DecodeLayout(bs, entry.layout(&packed)); err != nil {
		return nil, err
	}
	entry.SpawnRate, entry.IsSpecial = UnpackSpawnRate(packed)
	return &entry, nil
}

// Decode reads a table container produced by Encode.
func Decode(bs []byte) (*Info, error) {
	container, err := sir0.Parse(bs)
	if err != nil {
		return nil, errors.Wrap(err, "bwild.Decode error")
	}

	statsCount, err := readCount(container, subHeaderStatsCount, StatsEntrySize)
	if err != nil {
		return nil, errors.Wrap(err, "bwild.Decode error: stats count")
	}
	statsPointer, err := container.SubHeaderInt64(subHeaderStatsPointer)
	if err != nil {
		return nil, errors.Wrap(err, "bwild.Decode error: stats pointer")
	}

	info := Info{
		Stats: make([]StatsEntry, 0, statsCount),
	}
	for i := 0; i < statsCount; i++ {
		offset, err := container.Int64At(statsPointer + int64(i)*sir0.PointerSize)
		if err != nil {
			return nil, errors.Wrapf(err, "bwild.Decode error: pointer of stats %d", i)
		}
		data, err := container.Slice(offset, StatsEntrySize)
		if err != nil {
			return nil, errors.Wrapf(err, "bwild.Decode error: stats %d", i)
		}
		stats, err := DecodeStatsEntry(i, data)
		if err != nil {
			return nil, errors.Wrapf(err, "bwild.Decode error: stats %d", i)
		}
		info.Stats = append(info.Stats, *stats)
	}

	floorCount, err := readCount(container, subHeaderFloorCount, sir0.PointerSize)
	if err != nil {
		return nil, errors.Wrap(err, "bwild.Decode error: floor count")
	}
	info.Floors = make([]Floor, 0, floorCount)
	for i := 0; i < floorCount; i++ {
		offset, err := container.SubHeaderInt64(subHeaderFloors + int64(i)*sir0.PointerSize)
		if err != nil {
			return nil, errors.Wrapf(err, "bwild.Decode error: pointer of floor %d", i)
		}
		floor := Floor{Entries: make([]SpawnEntry, 0, statsCount)}
		for j := 0; j < statsCount; j++ {
			data, err := container.Slice(offset+int64(j)*SpawnEntrySize, SpawnEntrySize)
			if err != nil {
				return nil, errors.Wrapf(err, "bwild.Decode error: floor %d entry %d", i, j)
			}
			entry, err := DecodeSpawnEntry(data)
			if err != nil {
				return nil, errors.Wrapf(err, "bwild.Decode error: floor %d entry %d", i, j)
			}
			floor.Entries = append(floor.Entries, *entry)
		}
		info.Floors = append(info.Floors, floor)
	}

	return &info, nil
}

// readCount reads a sub-header count and rejects values that could not fit in
// the container given the minimum size of each counted element.
func readCount(container *sir0.Container, offset int64, elementSize int) (int, error) {
	count, err := container.SubHeaderInt64(offset)
	if err != nil {
		return 0, err
	}
	if count < 0 || count > int64(len(container.Data))/int64(elementSize) {
		return 0, sir0.ErrMalformed{Reason: fmt.Sprintf("count %d does not fit in %d bytes", count, len(container.Data))}
	}
	return int(count), nil
}
