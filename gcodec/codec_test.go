package gcodec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayloads() map[string][]byte {
	return map[string][]byte{
		"empty":      {},
		"short":      {1, 2, 3},
		"repetitive": bytes.Repeat([]byte("SIR0\x00\x00\x00\x00"), 512),
		"ff padding": bytes.Repeat([]byte{0xFF}, 4096),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, name := range Names() {
		codec, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, codec.Name())

		for payloadName, payload := range samplePayloads() {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err, "%s/%s", name, payloadName)
			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err, "%s/%s", name, payloadName)
			assert.Equal(t, len(payload), len(decompressed), "%s/%s", name, payloadName)
			assert.True(t, bytes.Equal(payload, decompressed), "%s/%s", name, payloadName)
		}
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("gyu0")
	var unknown ErrUnknownCodec
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "gyu0", unknown.Name)
}

func TestLZ4_StoresIncompressible(t *testing.T) {
	compressed, err := LZ4{}.Compress([]byte{9, 8, 7})
	require.NoError(t, err)
	assert.Equal(t, lz4StoredMagic, compressed[:4])
}

func TestDecompress_Garbage(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x10, 0, 0, 0, 1}
	for _, codec := range []Codec{Zstd{}, LZ4{}, None{}} {
		_, err := codec.Decompress(garbage)
		var failure ErrCompression
		require.ErrorAs(t, err, &failure, codec.Name())
		assert.Equal(t, OpDecompress, failure.Op)
	}
}

func TestDecompress_IgnoresTrailingPadding(t *testing.T) {
	payload := bytes.Repeat([]byte("floor"), 100)
	for _, name := range Names() {
		codec, err := ByName(name)
		require.NoError(t, err)
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		padded := append(compressed, make([]byte, 15)...)
		decompressed, err := codec.Decompress(padded)
		require.NoError(t, err, name)
		assert.Equal(t, payload, decompressed, name)
	}
}

func TestDecompress_TruncatedPayload(t *testing.T) {
	compressed, err := None{}.Compress([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	_, err = None{}.Decompress(compressed[:len(compressed)-1])
	var failure ErrCompression
	assert.ErrorAs(t, err, &failure)
}

func TestDecompress_DeclaredSizeTooLarge(t *testing.T) {
	for _, name := range Names() {
		codec, err := ByName(name)
		require.NoError(t, err)
		compressed, err := codec.Compress([]byte{1, 2, 3, 4})
		require.NoError(t, err)

		// declare a 4 GiB result for a tiny payload
		binary.LittleEndian.PutUint32(compressed[4:], 0xFFFFFFFF)
		_, err = codec.Decompress(compressed)
		var failure ErrCompression
		require.ErrorAs(t, err, &failure, name)
		assert.Equal(t, OpDecompress, failure.Op, name)
	}
}
