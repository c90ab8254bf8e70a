package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "zstd", cfg.Codec)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, DefaultDungeonCount, cfg.DungeonCount)
	assert.Equal(t, DefaultCreatureCount, cfg.CreatureCount)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dreamnexus.yaml")
	content := []byte("codec: lz4\nworkers: 4\nlog:\n  level: debug\n  development: true\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lz4", cfg.Codec)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultDungeonCount, cfg.DungeonCount)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"codec":          "codec: gzip\n",
		"workers":        "workers: -1\n",
		"dungeon_count":  "dungeon_count: -3\n",
		"creature_count": "creature_count: -3\n",
	}
	for key, content := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := Parse([]byte(content))
			var invalid ErrInvalid
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, key, invalid.Key)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("codec: [zstd"))
	assert.Error(t, err)
}
