package entries

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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC().Truncate(time.Second)

	query := `INSERT INTO entries (user_id, name, username, password_encrypted, url, notes_encrypted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		e.UserID, e.Name, nullString(e.Username), e.PasswordEncrypted,
		nullString(e.URL), nullBytes(e.NotesEncrypted), e.CreatedAt.Format(models.TimeFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry id: %w", err)
	}
	e.ID = id
	return e, nil
}

// ListByOwner orders by created_at then id, both descending, so entries added
// within the same second still list newest first.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, userID int64) ([]models.EntrySummary, error) {
	query := `SELECT id, name, username, url FROM entries
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.EntrySummary
	for rows.Next() {
		var (
			item          models.EntrySummary
			username, url sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &username, &url); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		item.Username = username.String
		item.URL = url.String
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, userID, id int64) (*models.Entry, error) {
	query := `SELECT id, user_id, name, username, password_encrypted, url, notes_encrypted, created_at
		FROM entries WHERE id = ? AND user_id = ?`

	var (
		e             models.Entry
		username, url sql.NullString
		createdAt     string
	)
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &username, &e.PasswordEncrypted, &url, &e.NotesEncrypted, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	e.Username = username.String
	e.URL = url.String

	e.CreatedAt, err = time.Parse(models.TimeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for entry %d: %w", id, err)
	}
	return &e, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM entries WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
