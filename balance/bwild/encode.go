package bwild

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/pkg/errors"
)

type ErrFloorWidth struct {
	Floor int
	Want  int
	Got   int
}

func (r ErrFloorWidth) Error() string {
	return fmt.Sprintf("floor %d has %d spawn entries; the stats table has %d creatures", r.Floor, r.Got, r.Want)
}

func EncodeStatsEntry(entry StatsEntry) ([]byte, error) {
	return lbytes.EncodeLayout(entry.layout())
}

func EncodeSpawnEntry(entry SpawnEntry) ([]byte, error) {
	packed := PackSpawnRate(entry.SpawnRate, entry.IsSpecial)
	return lbytes.EncodeLayout(entry.layout(&packed))
}

// Encode writes the table as its own container.
//
// Every stat and every floor gets an explicit pointer even though their
// positions follow from the record sizes; readers of the format use the pointers.
func Encode(info Info) ([]byte, error) {
	for i, floor := range info.Floors {
		if len(floor.Entries) != len(info.Stats) {
			return nil, ErrFloorWidth{Floor: i, Want: len(info.Stats), Got: len(floor.Entries)}
		}
	}

	builder := sir0.NewBuilder()

	statsPositions := make([]int64, 0, len(info.Stats))
	for i, stats := range info.Stats {
		bs, err := EncodeStatsEntry(stats)
		if err != nil {
			return nil, errors.Wrapf(err, "bwild.Encode error at stats %d", i)
		}
		statsPositions = append(statsPositions, builder.Write(bs))
	}

	statsPointer := builder.Len()
	for _, position := range statsPositions {
		builder.WritePointer(position)
	}

	floorPositions := make([]int64, 0, len(info.Floors))
	for i, floor := range info.Floors {
		floorPositions = append(floorPositions, builder.Len())
		for j, entry := range floor.Entries {
			bs, err := EncodeSpawnEntry(entry)
			if err != nil {
				return nil, errors.Wrapf(err, "bwild.Encode error at floor %d entry %d", i, j)
			}
			builder.Write(bs)
		}
		builder.Pad(sir0.Alignment, FloorFill)
	}

	builder.Align(sir0.Alignment)
	builder.SetSubHeader()
	builder.WriteInt64(int64(len(info.Stats)))
	builder.WritePointer(statsPointer)
	builder.WriteInt64(int64(len(info.Floors)))
	for _, position := range floorPositions {
		builder.WritePointer(position)
	}

	bs, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "bwild.Encode error")
	}
	return bs, nil
}
