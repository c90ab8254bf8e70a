// Package bentry encodes one dungeon's balance data: a container whose
// sub-header points at four sections. The floor records are stored inline; the
// other three sections are complete nested containers.
package bentry

import (
	"github.com/StrikerX3/DreamNexus/balance/bdata4"
	"github.com/StrikerX3/DreamNexus/balance/bfloor"
	"github.com/StrikerX3/DreamNexus/balance/btrap"
	"github.com/StrikerX3/DreamNexus/balance/bwild"
)

type (
	Section int
	Entry   struct {
		FloorInfos  []bfloor.Entry     `json:"floor_infos"`
		WildPokemon *bwild.Info        `json:"wild_pokemon,omitempty"`
		TrapWeights *btrap.TrapWeights `json:"trap_weights,omitempty"`
		Reserved4   *bdata4.DataEntry4 `json:"reserved_4,omitempty"`
	}
)

const (
	SectionFloors Section = iota
	SectionWildPokemon
	SectionTrapWeights
	SectionReserved
)

// Sections is the order sections are written in, and the order of their
// pointers in the sub-header.
var Sections = []Section{
	SectionFloors,
	SectionWildPokemon,
	SectionTrapWeights,
	SectionReserved,
}

func (s Section) String() string {
	switch s {
	case SectionFloors:
		return "FloorInfos"
	case SectionWildPokemon:
		return "WildPokemon"
	case SectionTrapWeights:
		return "TrapWeights"
	case SectionReserved:
		return "Reserved4"
	default:
		return "Unknown"
	}
}

// New creates an entry with floorCount empty floors and no nested sections.
func New(floorCount int16) *Entry {
	floors := make([]bfloor.Entry, 0, floorCount)
	for i := int16(0); i < floorCount; i++ {
		floors = append(floors, bfloor.New(i))
	}
	return &Entry{FloorInfos: floors}
}

// Present lists the sections that hold data.
func (e Entry) Present() []Section {
	sections := make([]Section, 0, len(Sections))
	if len(e.FloorInfos) > 0 {
		sections = append(sections, SectionFloors)
	}
	if e.WildPokemon != nil {
		sections = append(sections, SectionWildPokemon)
	}
	if e.TrapWeights != nil {
		sections = append(sections, SectionTrapWeights)
	}
	if e.Reserved4 != nil {
		sections = append(sections, SectionReserved)
	}
	return sections
}
