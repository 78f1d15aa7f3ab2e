package config

import "github.com/spf13/pflag"

// Flag names shared with the CLI.
const (
	FlagConfig   = "config"
	FlagDB       = "db"
	FlagLog      = "log"
	FlagLogLevel = "log-level"
)

// RegisterFlags adds the configuration flags to fs. Defaults shown in help
// come from LoadDefaults; only flags the user actually sets override JSON.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.StringP(FlagDB, "d", d.DBPath, "vault database file")
	fs.StringP(FlagLog, "l", d.LogPath, "audit log file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
}

func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	for name, dst := range map[string]*string{
		FlagDB:       &cfg.DBPath,
		FlagLog:      &cfg.LogPath,
		FlagLogLevel: &cfg.LogLevel,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}
