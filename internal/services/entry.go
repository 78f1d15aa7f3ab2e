package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/dbx"
	"github.com/dmitrijs2005/pmvault/internal/logging"
	"github.com/dmitrijs2005/pmvault/internal/models"
	"github.com/dmitrijs2005/pmvault/internal/repositories/entries"
)

// ErrNameRequired is returned by Add for an entry without a name.
var ErrNameRequired = errors.New("entry name is required")

// NewEntry is the input of EntryService.Add. Password is always protected,
// even when empty; Notes is protected only when non-empty.
type NewEntry struct {
	Name     string
	Username string
	Password []byte
	URL      string
	Notes    []byte
}

// RevealedEntry is a decrypted entry. Call Wipe once it has been shown.
type RevealedEntry struct {
	ID        int64
	Name      string
	Username  string
	URL       string
	Password  []byte
	Notes     []byte
	CreatedAt string
}

// Wipe zeroes the revealed secret fields.
func (e *RevealedEntry) Wipe() {
	if e == nil {
		return
	}
	common.WipeByteArray(e.Password)
	common.WipeByteArray(e.Notes)
	e.Password, e.Notes = nil, nil
}

// EntryService defines entry operations for an authenticated session.
// Entries are always scoped to session.UserID; an id owned by another user
// reports common.ErrorNotFound.
type EntryService interface {
	Add(ctx context.Context, s *Session, e NewEntry) (int64, error)
	List(ctx context.Context, s *Session) ([]models.EntrySummary, error)
	Show(ctx context.Context, s *Session, id int64) (*RevealedEntry, error)
	Delete(ctx context.Context, s *Session, id int64) error
}

type entryService struct {
	db    *sql.DB
	codec *SecretCodec
	log   logging.Logger
}

// NewEntryService constructs an EntryService bound to db.
func NewEntryService(db *sql.DB, codec *SecretCodec, log logging.Logger) EntryService {
	return &entryService{db: db, codec: codec, log: log}
}

func (s *entryService) getEntriesRepo(tx dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(tx)
}

// Add protects the secret fields of e and stores the entry.
func (s *entryService) Add(ctx context.Context, sess *Session, e NewEntry) (int64, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return 0, ErrNameRequired
	}

	password := e.Password
	if password == nil {
		password = []byte{}
	}
	pwToken, err := s.codec.Protect(sess.Key, password)
	if err != nil {
		return 0, fmt.Errorf("protect password: %w", err)
	}

	var notesToken []byte
	if len(e.Notes) > 0 {
		notesToken, err = s.codec.Protect(sess.Key, e.Notes)
		if err != nil {
			return 0, fmt.Errorf("protect notes: %w", err)
		}
	}

	var created *models.Entry
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.getEntriesRepo(tx).Create(ctx, &models.Entry{
			UserID:            sess.UserID,
			Name:              name,
			Username:          strings.TrimSpace(e.Username),
			URL:               strings.TrimSpace(e.URL),
			PasswordEncrypted: pwToken,
			NotesEncrypted:    notesToken,
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("create entry: %w", err)
	}

	s.log.Info(ctx, "entry created", "user_id", sess.UserID, "entry_id", created.ID, "name", name)
	return created.ID, nil
}

// List returns the non-secret summary of the session owner's entries.
func (s *entryService) List(ctx context.Context, sess *Session) ([]models.EntrySummary, error) {
	list, err := s.getEntriesRepo(s.db).ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return list, nil
}

// Show reveals one entry. If any field fails to decrypt nothing is returned
// and the already revealed fields are wiped.
func (s *entryService) Show(ctx context.Context, sess *Session, id int64) (*RevealedEntry, error) {
	e, err := s.getEntriesRepo(s.db).GetByID(ctx, sess.UserID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	out := &RevealedEntry{
		ID:        e.ID,
		Name:      e.Name,
		Username:  e.Username,
		URL:       e.URL,
		CreatedAt: e.CreatedAt.Format(models.TimeFormat),
	}

	out.Password, err = s.codec.Reveal(sess.Key, e.PasswordEncrypted)
	if err != nil {
		s.log.Error(ctx, "entry reveal failed", "user_id", sess.UserID, "entry_id", id, "field", "password")
		return nil, err
	}
	out.Notes, err = s.codec.Reveal(sess.Key, e.NotesEncrypted)
	if err != nil {
		out.Wipe()
		s.log.Error(ctx, "entry reveal failed", "user_id", sess.UserID, "entry_id", id, "field", "notes")
		return nil, err
	}
	return out, nil
}

// Delete removes one entry of the session owner.
func (s *entryService) Delete(ctx context.Context, sess *Session, id int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.getEntriesRepo(tx).DeleteByID(ctx, sess.UserID, id)
	})
	if err != nil {
		s.log.Warn(ctx, "entry delete failed", "user_id", sess.UserID, "entry_id", id)
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.Info(ctx, "entry deleted", "user_id", sess.UserID, "entry_id", id)
	return nil
}
