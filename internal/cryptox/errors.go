package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/pmvault/internal/common"
)

// InvalidRecordError reports a stored password hash that cannot be parsed.
type InvalidRecordError struct {
	Err error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid password hash record: %v", e.Err)
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }

func (e *InvalidRecordError) Is(target error) bool { return target == common.ErrInvalidRecord }

// DecryptionError reports a ciphertext that failed authentication: wrong key,
// tampering or truncation. The reason is kept for logs only.
type DecryptionError struct {
	Reason string
}

func (e *DecryptionError) Error() string {
	return "decryption failed: " + e.Reason
}

func (e *DecryptionError) Is(target error) bool { return target == common.ErrDecryption }
