package services

import (
	"fmt"

	"github.com/dmitrijs2005/pmvault/internal/common"
)

// AccountErrorKind tags why account creation was refused.
type AccountErrorKind int

const (
	DuplicateUser AccountErrorKind = iota + 1
	WeakPassword
	PasswordTooLong
	InvalidUsername
)

func (k AccountErrorKind) String() string {
	switch k {
	case DuplicateUser:
		return "duplicate_user"
	case WeakPassword:
		return "weak_password"
	case PasswordTooLong:
		return "password_too_long"
	case InvalidUsername:
		return "invalid_username"
	default:
		return fmt.Sprintf("account_error(%d)", int(k))
	}
}

// AccountError is returned by CreateAccount.
type AccountError struct {
	Kind AccountErrorKind
}

func (e *AccountError) Error() string {
	switch e.Kind {
	case DuplicateUser:
		return common.ErrDuplicateUser.Error()
	case WeakPassword:
		return fmt.Sprintf("%s (min %d chars)", common.ErrWeakPassword, MinPasswordLength)
	case PasswordTooLong:
		return fmt.Sprintf("master password too long (max %d bytes)", MaxPasswordBytes)
	case InvalidUsername:
		return "username required"
	default:
		return "account error"
	}
}

func (e *AccountError) Is(target error) bool {
	switch e.Kind {
	case DuplicateUser:
		return target == common.ErrDuplicateUser
	case WeakPassword:
		return target == common.ErrWeakPassword
	}
	return false
}

// AuthErrorKind records why a login was rejected. It is meant for logs and
// tests only; the message shown to users never depends on it.
type AuthErrorKind int

const (
	NoSuchUser AuthErrorKind = iota + 1
	BadPassword
)

func (k AuthErrorKind) String() string {
	switch k {
	case NoSuchUser:
		return "no_such_user"
	case BadPassword:
		return "bad_password"
	default:
		return fmt.Sprintf("auth_error(%d)", int(k))
	}
}

// AuthError is returned by Login for rejected credentials.
type AuthError struct {
	Kind AuthErrorKind
}

func (e *AuthError) Error() string { return common.ErrInvalidCredentials.Error() }

func (e *AuthError) Is(target error) bool { return target == common.ErrInvalidCredentials }
