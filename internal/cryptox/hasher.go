package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps a single hash in the tens of milliseconds on
// commodity hardware.
const DefaultBcryptCost = bcrypt.DefaultCost

// MaxPasswordBytes is the bcrypt input limit. bcrypt ignores everything past
// it, so longer candidates never verify.
const MaxPasswordBytes = 72

// Hasher hashes and verifies master passwords with bcrypt. The returned record
// is the standard modular-crypt string ($2a$<cost>$<salt><digest>), so it
// carries algorithm id, cost and salt along with the digest.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using the given bcrypt cost.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost returns the configured bcrypt cost.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns a fresh bcrypt record for password. bcrypt only accepts up to
// 72 bytes; longer passwords yield bcrypt.ErrPasswordTooLong.
func (h *Hasher) Hash(password []byte) ([]byte, error) {
	record, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt hash: %w", err)
	}
	return record, nil
}

// Verify reports whether password matches record. A mismatch returns
// (false, nil); only a structurally invalid record returns an error.
// Candidates longer than MaxPasswordBytes still pay for the comparison but
// are always a mismatch, since bcrypt would only look at their prefix.
func (h *Hasher) Verify(password, record []byte) (bool, error) {
	if _, err := bcrypt.Cost(record); err != nil {
		return false, &InvalidRecordError{Err: err}
	}

	err := bcrypt.CompareHashAndPassword(record, password)
	switch {
	case err == nil:
		return len(password) <= MaxPasswordBytes, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, &InvalidRecordError{Err: err}
	}
}
