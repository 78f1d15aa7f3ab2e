package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pmvault/internal/cryptox"
	"github.com/dmitrijs2005/pmvault/internal/logging"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the pmvault CLI.
//
// Fields:
//   - DBPath: SQLite vault file; its directory is created on first use.
//   - LogPath: audit log file (append-only, mode 0600).
//   - LogLevel: slog level name.
//   - BcryptCost: work factor for master password hashes created from now on.
//     Existing hashes keep the cost they were created with.
type Config struct {
	DBPath     string
	LogPath    string
	LogLevel   string
	BcryptCost int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "data/vault.db"
	c.LogPath = "data/cli.log"
	c.LogLevel = "info"
	c.BcryptCost = cryptox.DefaultBcryptCost
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db path must not be empty")
	}
	if c.LogPath == "" {
		return errors.New("log path must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// Load constructs a Config, applies defaults, then overlays values from JSON
// (if --config is set) and explicitly set flags of fs. Flags must have been
// registered with RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyFlags(fs, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
