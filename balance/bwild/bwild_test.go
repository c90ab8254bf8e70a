package bwild

import (
	"testing"

	"github.com/StrikerX3/DreamNexus/lbytes"
	"github.com/StrikerX3/DreamNexus/sir0"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInfo(creatureCount int) *Info {
	info := New(creatureCount)
	for i := range info.Stats {
		stats := &info.Stats[i]
		stats.XPYield = int32(100 * i)
		stats.HitPoints = int16(20 + i)
		stats.Attack = uint8(i)
		stats.SpecialAttack = uint8(i + 1)
		stats.Defense = uint8(i + 2)
		stats.SpecialDefense = uint8(i + 3)
		stats.Speed = uint8(i + 4)
		stats.StrongFoe = uint8(i % 2)
		stats.Level = uint8(5 + i)
	}
	for i := range info.Floors {
		for j := range info.Floors[i].Entries {
			info.Floors[i].Entries[j] = SpawnEntry{
				PokemonIndex:     int16(j + 1),
				SpawnRate:        uint8((i + j) % 128),
				IsSpecial:        (i+j)%3 == 0,
				RecruitmentLevel: uint8(i),
				Byte0B:           0xFF,
			}
		}
	}
	return info
}

func TestSpawnRate_Packing(t *testing.T) {
	packed := PackSpawnRate(5, true)
	assert.Equal(t, byte(0x0B), packed)
	rate, special := UnpackSpawnRate(packed)
	assert.Equal(t, uint8(5), rate)
	assert.True(t, special)
}

func TestSpawnRate_Bijection(t *testing.T) {
	seen := map[byte]bool{}
	for rate := 0; rate < 128; rate++ {
		for _, special := range []bool{false, true} {
			packed := PackSpawnRate(uint8(rate), special)
			assert.False(t, seen[packed])
			seen[packed] = true

			gotRate, gotSpecial := UnpackSpawnRate(packed)
			assert.Equal(t, uint8(rate), gotRate)
			assert.Equal(t, special, gotSpecial)
		}
	}
	assert.Len(t, seen, 256)
}

func TestSpawnRate_OutOfRangeTruncates(t *testing.T) {
	rate, special := UnpackSpawnRate(PackSpawnRate(200, false))
	assert.Equal(t, uint8(200&0x7F), rate)
	assert.False(t, special)
}

func TestSpawnEntry_Layout(t *testing.T) {
	bs, err := EncodeSpawnEntry(SpawnEntry{
		PokemonIndex:     0x0102,
		SpawnRate:        5,
		IsSpecial:        true,
		RecruitmentLevel: 9,
		Byte0B:           0x0B,
	})
	require.NoError(t, err)
	expected := lbytes.CreateZeroBytes(SpawnEntrySize)
	copy(expected, []byte{0x02, 0x01, 0x0B})
	expected[0x0A] = 9
	expected[0x0B] = 0x0B
	assert.Equal(t, expected, bs)
}

func TestStatsEntry_RoundTrip(t *testing.T) {
	in := createInfo(4).Stats[3]
	bs, err := EncodeStatsEntry(in)
	require.NoError(t, err)
	require.Len(t, bs, StatsEntrySize)
	assert.Equal(t, []byte{0, 0, 0}, bs[0x0D:])

	out, err := DecodeStatsEntry(3, bs)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
	assert.Equal(t, CreatureIndex(4), out.CreatureIndex)
}

func TestInfo_RoundTrip(t *testing.T) {
	for _, creatureCount := range []int{0, 1, 3} {
		in := createInfo(creatureCount)
		bs, err := Encode(*in)
		require.NoError(t, err)
		assert.Zero(t, len(bs)%sir0.Alignment)

		out, err := Decode(bs)
		require.NoError(t, err)
		assert.Equal(t, in, out, "creature count %d", creatureCount)
	}
}

func TestEncode_StatsPointerTable(t *testing.T) {
	info := createInfo(3)
	bs, err := Encode(*info)
	require.NoError(t, err)

	container, err := sir0.Parse(bs)
	require.NoError(t, err)
	statsPointer, err := container.SubHeaderInt64(subHeaderStatsPointer)
	require.NoError(t, err)
	assert.Equal(t, int64(sir0.HeaderSize+3*StatsEntrySize), statsPointer)
	for i := 0; i < 3; i++ {
		pointer, err := container.Int64At(statsPointer + int64(i)*8)
		require.NoError(t, err)
		assert.Equal(t, int64(sir0.HeaderSize+i*StatsEntrySize), pointer)
	}

	// the floors follow the pointer table directly, without alignment
	firstFloor, err := container.SubHeaderInt64(subHeaderFloors)
	require.NoError(t, err)
	assert.Equal(t, statsPointer+3*8, firstFloor)
}

func TestEncode_FloorFillIsFF(t *testing.T) {
	// 3 stats and 3 pointers put floor 0 at 0x68; its 48 bytes end at 0x98
	// and are padded with 0xFF up to 0xA0
	info := createInfo(3)
	bs, err := Encode(*info)
	require.NoError(t, err)

	container, err := sir0.Parse(bs)
	require.NoError(t, err)
	firstFloor, err := container.SubHeaderInt64(subHeaderFloors)
	require.NoError(t, err)
	secondFloor, err := container.SubHeaderInt64(subHeaderFloors + 8)
	require.NoError(t, err)
	assert.Equal(t, int64(0x68), firstFloor)
	assert.Equal(t, int64(0xA0), secondFloor)
	assert.Equal(t, lbytes.CreateFillBytes(8, FloorFill), bs[0x98:0xA0])
}

func TestEncode_FloorWidthMismatch(t *testing.T) {
	info := createInfo(2)
	info.Floors[7].Entries = info.Floors[7].Entries[:1]
	_, err := Encode(*info)
	var width ErrFloorWidth
	require.ErrorAs(t, err, &width)
	assert.Equal(t, 7, width.Floor)
}

func TestDecode_BadCount(t *testing.T) {
	// 1<<60 stats of 16 bytes overflow int64 when multiplied
	for _, count := range []int64{1 << 40, 1 << 60, -1} {
		builder := sir0.NewBuilder()
		builder.SetSubHeader()
		builder.WriteInt64(count)
		builder.WritePointer(sir0.HeaderSize)
		builder.WriteInt64(0)
		bs, err := builder.Build()
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			_, err = Decode(bs)
		}, "count %d", count)
		var malformed sir0.ErrMalformed
		assert.ErrorAs(t, err, &malformed, "count %d", count)
	}
}

func TestDecode_BadFloorCount(t *testing.T) {
	builder := sir0.NewBuilder()
	builder.SetSubHeader()
	builder.WriteInt64(0)
	builder.WritePointer(sir0.HeaderSize)
	builder.WriteInt64(1 << 61)
	bs, err := builder.Build()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = Decode(bs)
	})
	var malformed sir0.ErrMalformed
	assert.ErrorAs(t, err, &malformed)
}
