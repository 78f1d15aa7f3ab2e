// Package services contains the application services of the vault: account
// creation and login (AuthService) and entry CRUD over protected secret
// fields (EntryService).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/cryptox"
	"github.com/dmitrijs2005/pmvault/internal/dbx"
	"github.com/dmitrijs2005/pmvault/internal/logging"
	"github.com/dmitrijs2005/pmvault/internal/models"
	"github.com/dmitrijs2005/pmvault/internal/repositories/users"
)

const (
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = cryptox.MaxPasswordBytes
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - CreateAccount: validate, hash the master password, generate the KDF
//     salt and persist the credential. Refusals are *AccountError.
//   - Login: verify the master password and derive the session key.
//     Rejections are *AuthError; a corrupt stored hash surfaces as
//     *cryptox.InvalidRecordError instead.
type AuthService interface {
	CreateAccount(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*Session, error)
}

type authService struct {
	db     *sql.DB
	hasher *cryptox.Hasher
	kdf    *cryptox.KeyDeriver
	log    logging.Logger

	// dummyHash is verified against when the user does not exist, so both
	// rejection paths pay one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService constructs an AuthService bound to db. It computes one bcrypt
// hash up front for the absent-user path.
func NewAuthService(db *sql.DB, hasher *cryptox.Hasher, kdf *cryptox.KeyDeriver, log logging.Logger) (AuthService, error) {
	dummy, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("dummy password: %w", err)
	}
	dummyHash, err := hasher.Hash([]byte(dummy))
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &authService{db: db, hasher: hasher, kdf: kdf, log: log, dummyHash: dummyHash}, nil
}

func (a *authService) getUsersRepo(tx dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(tx)
}

func validateAccount(username string, password []byte) error {
	if username == "" {
		return &AccountError{Kind: InvalidUsername}
	}
	if utf8.RuneCount(password) < MinPasswordLength {
		return &AccountError{Kind: WeakPassword}
	}
	if len(password) > MaxPasswordBytes {
		return &AccountError{Kind: PasswordTooLong}
	}
	return nil
}

// CreateAccount trims username, checks the password policy and stores a new
// credential. The existence check and the insert share one transaction.
func (a *authService) CreateAccount(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if err := validateAccount(username, password); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash master password: %w", err)
	}
	salt, err := a.kdf.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate kdf salt: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getUsersRepo(tx)

		_, err := repo.FindByUsername(ctx, username)
		switch {
		case err == nil:
			return common.ErrDuplicateUser
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		_, err = repo.Create(ctx, &models.UserCredential{
			Username:     username,
			PasswordHash: hash,
			KDFSalt:      salt,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return &AccountError{Kind: DuplicateUser}
		}
		return fmt.Errorf("create user: %w", err)
	}

	a.log.Info(ctx, "user created", "username", username)
	return nil
}

// Login authenticates username/password and returns a session owning the
// derived key.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	username = strings.TrimSpace(username)

	user, err := a.getUsersRepo(a.db).FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		// Same bcrypt work as a real comparison; the result is irrelevant.
		_, _ = a.hasher.Verify(password, a.dummyHash)
		a.log.Warn(ctx, "login failed", "username", username, "reason", NoSuchUser.String())
		return nil, &AuthError{Kind: NoSuchUser}
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		a.log.Error(ctx, "stored password hash unreadable", "username", username, "error", err)
		return nil, fmt.Errorf("verify user %q: %w", username, err)
	}
	if !ok {
		a.log.Warn(ctx, "login failed", "username", username, "reason", BadPassword.String())
		return nil, &AuthError{Kind: BadPassword}
	}

	key, err := a.kdf.DeriveKey(password, user.KDFSalt)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	a.log.Info(ctx, "login successful", "username", username, "user_id", user.ID)
	return &Session{UserID: user.ID, Username: user.Username, Key: key}, nil
}
