// Package bwild encodes the wild Pokémon table of a dungeon: one stats record
// per creature and, for each of the 99 floors, one spawn entry per creature.
package bwild

type (
	CreatureIndex int
	Info          struct {
		Stats  []StatsEntry `json:"stats"`
		Floors []Floor      `json:"floors"`
	}
	StatsEntry struct {
		// Index and CreatureIndex follow from the record position and are not stored.
		Index          int           `json:"index"`
		CreatureIndex  CreatureIndex `json:"creature_index"`
		XPYield        int32         `json:"xp_yield"`
		HitPoints      int16         `json:"hit_points"`
		Attack         uint8         `json:"attack"`
		SpecialAttack  uint8         `json:"special_attack"`
		Defense        uint8         `json:"defense"`
		SpecialDefense uint8         `json:"special_defense"`
		Speed          uint8         `json:"speed"`
		StrongFoe      uint8         `json:"strong_foe"`
		Level          uint8         `json:"level"`
	}
	Floor struct {
		Entries []SpawnEntry `json:"entries"`
	}
	SpawnEntry struct {
		PokemonIndex int16 `json:"pokemon_index"`
		// SpawnRate is stored in 7 bits; larger values are truncated on encode.
		SpawnRate uint8 `json:"spawn_rate"`
		// IsSpecial marks creatures that never spawn randomly, such as shopkeepers.
		IsSpecial        bool  `json:"is_special"`
		RecruitmentLevel uint8 `json:"recruitment_level"`
		Byte0B           uint8 `json:"byte_0b"`
	}
)

const (
	StatsEntrySize = 16
	SpawnEntrySize = 16
	FloorCount     = 99
	// FloorFill pads each floor's spawn block. 0x00 is a valid spawn byte, so
	// the game's files use 0xFF here.
	FloorFill = 0xFF

	subHeaderStatsCount   = 0x00
	subHeaderStatsPointer = 0x08
	subHeaderFloorCount   = 0x10
	subHeaderFloors       = 0x18
)

func NewStatsEntry(index int) StatsEntry {
	return StatsEntry{
		Index:         index,
		CreatureIndex: CreatureIndex(index + 1),
	}
}

func NewFloor(creatureCount int) Floor {
	return Floor{Entries: make([]SpawnEntry, creatureCount)}
}

// New creates an empty table for creatureCount creatures over 99 floors.
func New(creatureCount int) *Info {
	info := Info{
		Stats:  make([]StatsEntry, creatureCount),
		Floors: make([]Floor, FloorCount),
	}
	for i := range info.Stats {
		info.Stats[i] = NewStatsEntry(i)
	}
	for i := range info.Floors {
		info.Floors[i] = NewFloor(creatureCount)
	}
	return &info
}

// PackSpawnRate combines the 7-bit rate and the special flag into one byte.
func PackSpawnRate(rate uint8, special bool) byte {
	packed := rate << 1
	if special {
		packed |= 1
	}
	return packed
}

func UnpackSpawnRate(packed byte) (rate uint8, special bool) {
	return packed >> 1, packed&1 != 0
}
