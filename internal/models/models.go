// Package models defines the persisted vault entities.
package models

import "time"

// UserCredential is one vault owner. PasswordHash is an opaque bcrypt record;
// KDFSalt is generated once at account creation and never changes, because
// every stored secret depends on the key derived from it.
type UserCredential struct {
	ID           int64
	Username     string
	PasswordHash []byte
	KDFSalt      []byte
	CreatedAt    time.Time
}

// Entry is a stored secret record. PasswordEncrypted and NotesEncrypted hold
// cipher tokens; an empty NotesEncrypted means the entry has no notes.
type Entry struct {
	ID                int64
	UserID            int64
	Name              string
	Username          string
	URL               string
	PasswordEncrypted []byte
	NotesEncrypted    []byte
	CreatedAt         time.Time
}

// EntrySummary is the listing projection of an Entry: no secret fields.
type EntrySummary struct {
	ID       int64
	Name     string
	Username string
	URL      string
}

// TimeFormat is how created_at columns are stored: UTC, second precision.
const TimeFormat = time.RFC3339
