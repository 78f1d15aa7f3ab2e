package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/dbx"
	"github.com/dmitrijs2005/pmvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.UserCredential) (*models.UserCredential, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.CreatedAt = u.CreatedAt.UTC().Truncate(time.Second)

	query := `INSERT INTO users (username, password_hash, kdf_salt, created_at)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		u.Username, u.PasswordHash, u.KDFSalt, u.CreatedAt.Format(models.TimeFormat))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}
	u.ID = id
	return u, nil
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.UserCredential, error) {
	query := `SELECT id, username, password_hash, kdf_salt, created_at
		FROM users WHERE username = ?`

	u := &models.UserCredential{}
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.KDFSalt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}

	u.CreatedAt, err = time.Parse(models.TimeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for user %q: %w", username, err)
	}
	return u, nil
}
