package cli

import (
	"errors"

	"github.com/dmitrijs2005/pmvault/internal/common"
)

var (
	errUsernameRequired  = errors.New("username required")
	errPasswordsMismatch = errors.New("passwords do not match")
	errEntryNotFound     = errors.New("entry not found or not owned by you")
	errBadID             = errors.New("--id must be a positive number")
)

// userMessage maps service errors onto what the user gets to see. Both
// credential rejections collapse into the same text, and a decryption
// failure never names the failing field.
func userMessage(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return common.ErrInvalidCredentials
	case errors.Is(err, common.ErrDecryption):
		return errors.New("could not decrypt entry (wrong key or corrupted data)")
	case errors.Is(err, common.ErrorNotFound):
		return errEntryNotFound
	}
	return err
}
