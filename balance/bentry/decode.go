package bentry

import (
	"fmt"

	"github.com/StrikerX3/DreamNexus/balance/bdata4"
	"github.com/StrikerX3/DreamNexus/balance/bfloor"
	"github.com/StrikerX3/DreamNexus/balance/btrap"
	"github.com/StrikerX3/DreamNexus/balance/bwild"
	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/pkg/errors"
)

type (
	// ErrSectionOrder is returned when section pointers are not in write order,
	// which would make section lengths negative.
	ErrSectionOrder struct {
		Section  Section
		Pointer  int64
		Previous int64
	}
	ErrSectionDecode struct {
		Section Section
		Err     error
	}
)

func (r ErrSectionOrder) Error() string {
	return fmt.Sprintf("section %s starts at %#x, before the preceding boundary %#x", r.Section, r.Pointer, r.Previous)
}

func (r ErrSectionDecode) Error() string {
	return "decoding section " + r.Section.String() + ": " + r.Err.Error()
}

func (r ErrSectionDecode) Unwrap() error {
	return r.Err
}

// Spans returns the [start, end) range of every section. Each section ends
// where the next begins; the last one ends at the sub-header.
func Spans(container *sir0.Container) ([][2]int64, error) {
	pointers := make([]int64, 0, len(Sections))
	previous := int64(sir0.HeaderSize)
	for i, section := range Sections {
		pointer, err := container.SubHeaderInt64(int64(i) * sir0.PointerSize)
		if err != nil {
			return nil, errors.Wrapf(err, "bentry.Spans error: pointer of %s", section)
		}
		if pointer < previous {
			return nil, ErrSectionOrder{Section: section, Pointer: pointer, Previous: previous}
		}
		pointers = append(pointers, pointer)
		previous = pointer
	}
	if container.SubHeaderOffset < previous {
		return nil, ErrSectionOrder{
			Section:  Sections[len(Sections)-1],
			Pointer:  previous,
			Previous: container.SubHeaderOffset,
		}
	}

	spans := make([][2]int64, 0, len(Sections))
	for i, pointer := range pointers {
		end := container.SubHeaderOffset
		if i+1 < len(pointers) {
			end = pointers[i+1]
		}
		spans = append(spans, [2]int64{pointer, end})
	}
	return spans, nil
}

func decodeSection(entry *Entry, section Section, bs []byte) error {
	switch section {
	case SectionFloors:
		floors, err := bfloor.DecodeBlock(bs)
		if err != nil {
			return err
		}
		entry.FloorInfos = floors
	case SectionWildPokemon:
		if len(bs) == 0 {
			return nil
		}
		info, err := bwild.Decode(bs)
		if err != nil {
			return err
		}
		entry.WildPokemon = info
	case SectionTrapWeights:
		if len(bs) == 0 {
			return nil
		}
		weights, err := btrap.Decode(bs)
		if err != nil {
			return err
		}
		entry.TrapWeights = weights
	case SectionReserved:
		if len(bs) == 0 {
			return nil
		}
		data, err := bdata4.Decode(bs)
		if err != nil {
			return err
		}
		entry.Reserved4 = data
	default:
		return ds.ErrUnreachableCode{Caller: "bentry.decodeSection", Value: section}
	}
	return nil
}

// Decode reads an entry container produced by Encode. A section of length
// zero is absent.
func Decode(bs []byte) (*Entry, error) {
	container, err := sir0.Parse(bs)
	if err != nil {
		return nil, errors.Wrap(err, "bentry.Decode error")
	}
	spans, err := Spans(container)
	if err != nil {
		return nil, errors.Wrap(err, "bentry.Decode error")
	}

	entry := Entry{}
	for i, section := range Sections {
		data, err := container.Slice(spans[i][0], spans[i][1]-spans[i][0])
		if err != nil {
			return nil, ErrSectionDecode{Section: section, Err: err}
		}
		if err := decodeSection(&entry, section, data); err != nil {
			return nil, ErrSectionDecode{Section: section, Err: err}
		}
	}
	return &entry, nil
}
