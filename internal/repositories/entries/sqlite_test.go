package entries

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/database"
	"github.com/dmitrijs2005/pmvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func addUser(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users(username, password_hash, kdf_salt, created_at) VALUES (?, x'00', x'00', '2024-01-01T00:00:00Z')`, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestCreate_AndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	uid := addUser(t, db, "alice")

	created, err := r.Create(ctx, &models.Entry{
		UserID:            uid,
		Name:              "GitHub",
		Username:          "alice@example.com",
		URL:               "https://github.com",
		PasswordEncrypted: []byte("pw-token"),
		NotesEncrypted:    []byte("notes-token"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := r.GetByID(ctx, uid, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Name)
	assert.Equal(t, "alice@example.com", got.Username)
	assert.Equal(t, "https://github.com", got.URL)
	assert.Equal(t, []byte("pw-token"), got.PasswordEncrypted)
	assert.Equal(t, []byte("notes-token"), got.NotesEncrypted)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCreate_OptionalFieldsStoredAsNull(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	uid := addUser(t, db, "alice")

	created, err := r.Create(ctx, &models.Entry{UserID: uid, Name: "bare", PasswordEncrypted: []byte("pw")})
	require.NoError(t, err)

	var username, url sql.NullString
	var notes []byte
	require.NoError(t, db.QueryRow(`SELECT username, url, notes_encrypted FROM entries WHERE id=?`, created.ID).
		Scan(&username, &url, &notes))
	assert.False(t, username.Valid)
	assert.False(t, url.Valid)
	assert.Nil(t, notes)

	got, err := r.GetByID(ctx, uid, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Username)
	assert.Empty(t, got.URL)
	assert.Empty(t, got.NotesEncrypted)
}

func TestCreate_UnknownOwnerRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Create(context.Background(), &models.Entry{UserID: 999, Name: "x", PasswordEncrypted: []byte("pw")})
	require.Error(t, err)
}

func TestListByOwner_NewestFirstAndScoped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := addUser(t, db, "alice")
	bob := addUser(t, db, "bob")

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		_, err := r.Create(ctx, &models.Entry{
			UserID: alice, Name: name, URL: "u" + name,
			PasswordEncrypted: []byte("pw"), CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, &models.Entry{UserID: bob, Name: "bobs", PasswordEncrypted: []byte("pw")})
	require.NoError(t, err)

	list, err := r.ListByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "first", list[2].Name)
	assert.Equal(t, "uthird", list[0].URL)
}

func TestListByOwner_SameSecondUsesID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	uid := addUser(t, db, "alice")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, name := range []string{"a", "b"} {
		_, err := r.Create(ctx, &models.Entry{UserID: uid, Name: name, PasswordEncrypted: []byte("pw"), CreatedAt: at})
		require.NoError(t, err)
	}

	list, err := r.ListByOwner(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name)
}

func TestListByOwner_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	uid := addUser(t, db, "alice")

	list, err := r.ListByOwner(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByID_OtherOwnerIsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := addUser(t, db, "alice")
	bob := addUser(t, db, "bob")

	e, err := r.Create(ctx, &models.Entry{UserID: alice, Name: "x", PasswordEncrypted: []byte("pw")})
	require.NoError(t, err)

	_, err = r.GetByID(ctx, bob, e.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, alice, e.ID+100)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := addUser(t, db, "alice")
	bob := addUser(t, db, "bob")

	e, err := r.Create(ctx, &models.Entry{UserID: alice, Name: "x", PasswordEncrypted: []byte("pw")})
	require.NoError(t, err)

	require.ErrorIs(t, r.DeleteByID(ctx, bob, e.ID), common.ErrorNotFound)

	require.NoError(t, r.DeleteByID(ctx, alice, e.ID))
	_, err = r.GetByID(ctx, alice, e.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, r.DeleteByID(ctx, alice, e.ID), common.ErrorNotFound)
}

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func TestCreate_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+entries`).WillReturnError(errors.New("db down"))

	_, err := r.Create(context.Background(), &models.Entry{UserID: 1, Name: "x", PasswordEncrypted: []byte("pw")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert entry")
}

func TestListByOwner_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name`).WithArgs(int64(1)).WillReturnError(errors.New("db down"))

	_, err := r.ListByOwner(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select entries")
}

func TestListByOwner_RowError(t *testing.T) {
	r, mock := newRepoWithMock(t)
	rows := sqlmock.NewRows([]string{"id", "name", "username", "url"}).
		AddRow(int64(1), "a", nil, nil).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name`).WillReturnRows(rows)

	_, err := r.ListByOwner(context.Background(), 1)
	require.Error(t, err)
}

func TestGetByID_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*user_id`).WillReturnError(errors.New("db down"))

	_, err := r.GetByID(context.Background(), 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "query row scan failed")
}

func TestDeleteByID_Errors(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+entries`).WillReturnError(errors.New("db down"))
	err := r.DeleteByID(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete entry")

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+entries`).WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
	err = r.DeleteByID(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get rows affected")
}
