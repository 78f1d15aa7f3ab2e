// Package config loads runtime configuration for the pmvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with --config / -c (see (*Config).LoadFile).
//  3. Command-line flags that were explicitly set, which override earlier values.
//
// Supported flags
//
//	-c, --config string     JSON config file
//	-d, --db string         vault database file
//	-l, --log string        audit log file
//	    --log-level string  debug, info, warn or error
//
// # JSON schema
//
// Every key is optional; absent keys keep the earlier value:
//
//	{
//	  "db_path": "data/vault.db",
//	  "log_path": "data/cli.log",
//	  "log_level": "info",
//	  "bcrypt_cost": 10
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
