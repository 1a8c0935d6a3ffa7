package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed default.toml
var defaultTOML []byte

// Environment override keys
const (
	EnvMode      = "CRAB_ARENA_MODE"
	EnvSeed      = "CRAB_ARENA_SEED"
	EnvAddr      = "CRAB_ARENA_ADDR"
	EnvServer    = "CRAB_ARENA_SERVER"
	EnvHitPoints = "CRAB_ARENA_HIT_POINTS"
	EnvMaxBalls  = "CRAB_ARENA_MAX_BALLS"
	EnvAudio     = "CRAB_ARENA_AUDIO"
)

// LookupFunc resolves an environment key
type LookupFunc func(key string) (string, bool)

// LoadOptions selects the sources merged by Load
type LoadOptions struct {
	Path    string     // TOML file; empty = embedded defaults only
	EnvFile string     // .env file; missing file is not an error
	Lookup  LookupFunc // Process environment; nil = os.LookupEnv
}

// DefaultTOML returns the embedded default configuration file
func DefaultTOML() []byte {
	return bytes.Clone(defaultTOML)
}

// Load merges defaults, the TOML file and environment overrides, then validates
// Precedence (highest first): process environment, .env file, TOML file, defaults
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		if err := decodeFile(opts.Path, cfg); err != nil {
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		vals, err := godotenv.Read(opts.EnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file %s: %w", opts.EnvFile, err)
		}
		if vals != nil {
			dotenv = vals
		}
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	merged := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(cfg, merged); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML bytes over the defaults without environment overrides
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	if err := decodeInto(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := decodeInto(data, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// decodeInto overlays TOML onto cfg
// A file that declares [[modes]] replaces the default mode list entirely
func decodeInto(data []byte, cfg *Config) error {
	defaultModes := cfg.Modes
	cfg.Modes = nil

	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		cfg.Modes = defaultModes
		return err
	}
	if len(cfg.Modes) == 0 {
		cfg.Modes = defaultModes
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v", undecoded)
	}
	return nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvMode); ok && v != "" {
		cfg.Match.Mode = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Match.Seed = seed
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvServer); ok && v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvServer, err)
		}
		cfg.Server.Enabled = enabled
	}

	if v, ok := lookup(EnvHitPoints); ok && v != "" {
		hp, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHitPoints, err)
		}
		cfg.Match.HitPoints = hp
	}

	if v, ok := lookup(EnvMaxBalls); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBalls, err)
		}
		// Applies to the selected mode only
		for i := range cfg.Modes {
			if cfg.Modes[i].Name == cfg.Match.Mode {
				cfg.Modes[i].MaxBalls = n
			}
		}
	}

	if v, ok := lookup(EnvAudio); ok && v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		cfg.Audio.Enabled = enabled
	}

	return nil
}
