// Package bfloor encodes the 98-byte per-floor record of a dungeon.
package bfloor

type (
	// DungeonStatusIndex is the weather applied to a floor.
	DungeonStatusIndex uint8
	Entry              struct {
		Index                   int16              `json:"index"`
		Short02                 int16              `json:"short_02"`
		Event                   string             `json:"event"`
		TurnLimit               int16              `json:"turn_limit"`
		Short26                 int16              `json:"short_26"`
		Short28                 int16              `json:"short_28"`
		DungeonMapDataInfoIndex int16              `json:"dungeon_map_data_info_index"`
		NameID                  uint8              `json:"name_id"`
		Byte2D                  uint8              `json:"byte_2d"`
		Byte2E                  uint8              `json:"byte_2e"`
		Byte2F                  uint8              `json:"byte_2f"`
		Short30                 int16              `json:"short_30"`
		Short32                 int16              `json:"short_32"`
		Byte34                  uint8              `json:"byte_34"`
		Byte35                  uint8              `json:"byte_35"`
		ItemSetIndex            uint8              `json:"item_set_index"`
		InvitationIndex         uint8              `json:"invitation_index"`
		Byte55                  uint8              `json:"byte_55"`
		Byte56                  uint8              `json:"byte_56"`
		Byte57                  uint8              `json:"byte_57"`
		Byte58                  uint8              `json:"byte_58"`
		Weather                 DungeonStatusIndex `json:"weather"`
		// Bytes37to53 and Bytes5Ato61 are not understood yet and are kept verbatim.
		Bytes37to53 []byte `json:"bytes_37_to_53"`
		Bytes5Ato61 []byte `json:"bytes_5a_to_61"`
	}
)

const (
	Size       = 98
	EventWidth = 32
	// widths of the two opaque ranges 0x37..0x53 and 0x5A..0x61
	Opaque37Width = 0x53 - 0x37 + 1
	Opaque5AWidth = 0x61 - 0x5A + 1
)

// New creates an empty floor with the given index.
func New(index int16) Entry {
	return Entry{
		Index:       index,
		Event:       "",
		Bytes37to53: make([]byte, Opaque37Width),
		Bytes5Ato61: make([]byte, Opaque5AWidth),
	}
}
