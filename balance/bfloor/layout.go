package bfloor

import (
	"github.com/StrikerX3/DreamNexus/lbytes"
)

func (e *Entry) layout() lbytes.Layout {
	return lbytes.Layout{
		Name: "FloorInfoEntry",
		Size: Size,
		Fields: []lbytes.Field{
			lbytes.Int16("index", 0x00, &e.Index),
			lbytes.Int16("short_02", 0x02, &e.Short02),
			lbytes.String("event", 0x04, EventWidth, &e.Event),
			lbytes.Int16("turn_limit", 0x24, &e.TurnLimit),
			lbytes.Int16("short_26", 0x26, &e.Short26),
			lbytes.Int16("short_28", 0x28, &e.Short28),
			lbytes.Int16("dungeon_map_data_info_index", 0x2A, &e.DungeonMapDataInfoIndex),
			lbytes.Uint8("name_id", 0x2C, &e.NameID),
			lbytes.Uint8("byte_2d", 0x2D, &e.Byte2D),
			lbytes.Uint8("byte_2e", 0x2E, &e.Byte2E),
			lbytes.Uint8("byte_2f", 0x2F, &e.Byte2F),
			lbytes.Int16("short_30", 0x30, &e.Short30),
			lbytes.Int16("short_32", 0x32, &e.Short32),
			lbytes.Uint8("byte_34", 0x34, &e.Byte34),
			lbytes.Uint8("byte_35", 0x35, &e.Byte35),
			lbytes.Uint8("item_set_index", 0x36, &e.ItemSetIndex),
			lbytes.Opaque("bytes_37_to_53", 0x37, Opaque37Width, &e.Bytes37to53),
			lbytes.Uint8("invitation_index", 0x54, &e.InvitationIndex),
			lbytes.Uint8("byte_55", 0x55, &e.Byte55),
			lbytes.Uint8("byte_56", 0x56, &e.Byte56),
			lbytes.Uint8("byte_57", 0x57, &e.Byte57),
			lbytes.Uint8("byte_58", 0x58, &e.Byte58),
			lbytes.Uint8("weather", 0x59, (*uint8)(&e.Weather)),
			lbytes.Opaque("bytes_5a_to_61", 0x5A, Opaque5AWidth, &e.Bytes5Ato61),
		},
	}
}
