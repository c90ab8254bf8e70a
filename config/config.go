// Package config loads the YAML configuration of the archive tool.
package config

import (
	"fmt"
	"os"

	"github.com/StrikerX3/DreamNexus/gcodec"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Codec   string `yaml:"codec"`
		Workers int    `yaml:"workers"`
		// DungeonCount is the number of entries in a freshly created archive.
		DungeonCount int `yaml:"dungeon_count"`
		// CreatureCount is the number of stats records in a fresh wild Pokémon table.
		CreatureCount int `yaml:"creature_count"`
		Log           Log `yaml:"log"`
	}
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	}
	ErrInvalid struct {
		Key    string
		Reason string
	}
)

const (
	DefaultDungeonCount  = 256
	DefaultCreatureCount = 1154
)

func (r ErrInvalid) Error() string {
	return fmt.Sprintf(`invalid configuration "%s": %s`, r.Key, r.Reason)
}

func Default() *Config {
	return &Config{
		Codec:         gcodec.NameZstd,
		Workers:       0,
		DungeonCount:  DefaultDungeonCount,
		CreatureCount: DefaultCreatureCount,
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config.Load error")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config.Parse error")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !lo.Contains(gcodec.Names(), c.Codec) {
		return ErrInvalid{Key: "codec", Reason: fmt.Sprintf(`"%s" is not one of %v`, c.Codec, gcodec.Names())}
	}
	if c.Workers < 0 {
		return ErrInvalid{Key: "workers", Reason: "must not be negative"}
	}
	if c.DungeonCount < 0 {
		return ErrInvalid{Key: "dungeon_count", Reason: "must not be negative"}
	}
	if c.CreatureCount < 0 {
		return ErrInvalid{Key: "creature_count", Reason: "must not be negative"}
	}
	return nil
}
