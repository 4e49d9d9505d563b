// Package config loads build/runtime tuning for the mpictl tool and
// its test harness: limb allocation ceiling, exponentiation window
// cap, and the Miller-Rabin round schedule. Structure and load/save
// flow follow a struct-of-sections + DefaultConfig() pattern on top
// of a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables exposed to callers of the mpi core.
type Config struct {
	Limits struct {
		MaxLimbs int `toml:"max_limbs"`
		MaxBits  int `toml:"max_bits"`
	} `toml:"limits"`

	Exponentiation struct {
		WindowCap int `toml:"window_cap"`
	} `toml:"exponentiation"`

	Primality struct {
		// MinRounds is a Miller-Rabin round-count floor (0 means none).
		// It is loaded and saved with the file only: nothing in this
		// module applies it, and mpi.IsPrime always uses its
		// bit-length-scaled schedule.
		MinRounds int `toml:"min_rounds"`
	} `toml:"primality"`
}

// DefaultConfig returns the tuning mpi uses when no config file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Limits.MaxLimbs = 10000
	cfg.Limits.MaxBits = 10000 * 64
	cfg.Exponentiation.WindowCap = 6
	cfg.Primality.MinRounds = 0
	return cfg
}

// GetConfigPath returns the platform-specific config file path for mpictl.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mpictl")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "mpictl.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mpictl")

	default:
		return "mpictl.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "mpictl.toml"
	}

	return filepath.Join(configDir, "mpictl.toml")
}

// Load loads configuration from the default config file, falling back
// to defaults when the file is absent.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path, falling back to defaults
// when the file is absent.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveTo writes configuration to path, creating parent directories as
// needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
