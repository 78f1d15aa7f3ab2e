// Package common defines shared sentinel errors and small helpers used across
// pmvault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account creation errors.
	ErrDuplicateUser = errors.New("user already exists")
	ErrWeakPassword  = errors.New("master password too short")

	// Authentication errors. Both "no such user" and "bad password" match
	// ErrInvalidCredentials so the user-visible message never tells them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Crypto errors.
	ErrInvalidRecord = errors.New("invalid password hash record")
	ErrDecryption    = errors.New("decryption failed")
	ErrKeyDestroyed  = errors.New("session key destroyed")
)
