package bentry

import (
	"github.com/StrikerX3/DreamNexus/balance/bdata4"
	"github.com/StrikerX3/DreamNexus/balance/bfloor"
	"github.com/StrikerX3/DreamNexus/balance/btrap"
	"github.com/StrikerX3/DreamNexus/balance/bwild"
	"github.com/StrikerX3/DreamNexus/ds"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/pkg/errors"
)

// ErrSectionEncode names the section that failed to encode.
type ErrSectionEncode struct {
	Section Section
	Err     error
}

func (r ErrSectionEncode) Error() string {
	return "encoding section " + r.Section.String() + ": " + r.Err.Error()
}

func (r ErrSectionEncode) Unwrap() error {
	return r.Err
}

func encodeSection(entry Entry, section Section) ([]byte, error) {
	switch section {
	case SectionFloors:
		return bfloor.EncodeBlock(entry.FloorInfos)
	case SectionWildPokemon:
		if entry.WildPokemon == nil {
			return nil, nil
		}
		return bwild.Encode(*entry.WildPokemon)
	case SectionTrapWeights:
		if entry.TrapWeights == nil {
			return nil, nil
		}
		return btrap.Encode(*entry.TrapWeights)
	case SectionReserved:
		if entry.Reserved4 == nil {
			return nil, nil
		}
		return bdata4.Encode(*entry.Reserved4)
	}
	return nil, ds.ErrUnreachableCode{Caller: "bentry.encodeSection", Value: section}
}

// Encode writes the sections in the order of Sections, each starting on a
// 16-byte boundary, followed by a sub-header of one pointer per section.
// An absent section takes no space and its pointer equals the next one.
func Encode(entry Entry) ([]byte, error) {
	builder := sir0.NewBuilder()
	pointers := make([]int64, 0, len(Sections))
	for i, section := range Sections {
		bs, err := encodeSection(entry, section)
		if err != nil {
			return nil, ErrSectionEncode{Section: section, Err: err}
		}
		if i > 0 {
			builder.Align(sir0.Alignment)
		}
		pointers = append(pointers, builder.Write(bs))
	}

	builder.Align(sir0.Alignment)
	builder.SetSubHeader()
	for _, pointer := range pointers {
		builder.WritePointer(pointer)
	}

	bs, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "bentry.Encode error")
	}
	return bs, nil
}
