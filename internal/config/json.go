package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from an explicit zero value.
type JsonConfig struct {
	DBPath     *string `json:"db_path"`
	LogPath    *string `json:"log_path"`
	LogLevel   *string `json:"log_level"`
	BcryptCost *int    `json:"bcrypt_cost"`
}

// LoadFile overlays c with the keys present in the JSON file at path.
// Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var jc JsonConfig
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DBPath != nil {
		c.DBPath = *jc.DBPath
	}
	if jc.LogPath != nil {
		c.LogPath = *jc.LogPath
	}
	if jc.LogLevel != nil {
		c.LogLevel = *jc.LogLevel
	}
	if jc.BcryptCost != nil {
		c.BcryptCost = *jc.BcryptCost
	}
	return nil
}
