package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds latchkey configuration.
type Config struct {
	Store StoreConfig `toml:"store"`
	UI    UIConfig    `toml:"ui"`
	KDF   KDFConfig   `toml:"kdf"`
}

// StoreConfig controls where the encrypted store lives.
type StoreConfig struct {
	Path string `toml:"path"`
}

// UIConfig controls display options.
type UIConfig struct {
	Color bool `toml:"color"`
}

// KDFConfig sets the argon2id cost parameters used for new stores and
// passphrase rotations. Existing stores keep the parameters recorded in
// their header.
type KDFConfig struct {
	Time    uint32 `toml:"time"`
	Memory  uint32 `toml:"memory"` // KiB
	Threads uint8  `toml:"threads"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Path: filepath.Join(ConfigDir(), "store.enc")},
		UI:    UIConfig{Color: true},
		KDF:   KDFConfig{Time: 1, Memory: 64 * 1024, Threads: 4},
	}
}

// ConfigDir returns the latchkey config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "latchkey")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()
	path := configPath()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	}
	return Save(Default())
}
