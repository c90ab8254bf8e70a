package bwild

import (
	"github.com/StrikerX3/DreamNexus/lbytes"
)

func (e *StatsEntry) layout() lbytes.Layout {
	return lbytes.Layout{
		Name: "StatsEntry",
		Size: StatsEntrySize,
		Fields: []lbytes.Field{
			lbytes.Int32("xp_yield", 0x00, &e.XPYield),
			lbytes.Int16("hit_points", 0x04, &e.HitPoints),
			lbytes.Uint8("attack", 0x06, &e.Attack),
			lbytes.Uint8("special_attack", 0x07, &e.SpecialAttack),
			lbytes.Uint8("defense", 0x08, &e.Defense),
			lbytes.Uint8("special_defense", 0x09, &e.SpecialDefense),
			lbytes.Uint8("speed", 0x0A, &e.Speed),
			lbytes.Uint8("strong_foe", 0x0B, &e.StrongFoe),
			lbytes.Uint8("level", 0x0C, &e.Level),
		},
	}
}

func (e *SpawnEntry) layout(packed *uint8) lbytes.Layout {
	return lbytes.Layout{
		Name: "SpawnEntry",
		Size: SpawnEntrySize,
		Fields: []lbytes.Field{
			lbytes.Int16("pokemon_index", 0x00, &e.PokemonIndex),
			lbytes.Uint8("spawn_rate_and_special_flag", 0x02, packed),
			lbytes.Uint8("recruitment_level", 0x0A, &e.RecruitmentLevel),
			lbytes.Uint8("byte_0b", 0x0B, &e.Byte0B),
		},
	}
}
