package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/pmvault/internal/cryptox"
	"github.com/dmitrijs2005/pmvault/internal/database"
	"github.com/dmitrijs2005/pmvault/internal/logging"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAuth(t *testing.T, db *sql.DB, log logging.Logger) AuthService {
	t.Helper()
	h, err := cryptox.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	svc, err := NewAuthService(db, h, cryptox.NewKeyDeriver(), log)
	require.NoError(t, err)
	return svc
}

func newEntries(db *sql.DB, log logging.Logger) EntryService {
	return NewEntryService(db, NewSecretCodec(cryptox.NewCipher()), log)
}

func login(t *testing.T, auth AuthService, user, pass string) *Session {
	t.Helper()
	s, err := auth.Login(context.Background(), user, []byte(pass))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// ---- recording logger ----

type logRecord struct {
	level string
	msg   string
	args  []any
}

func (r logRecord) String() string {
	return fmt.Sprintf("%s %s %v", r.level, r.msg, r.args)
}

type recLogger struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *recLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level: level, msg: msg, args: args})
}

func (l *recLogger) Debug(_ context.Context, msg string, args ...any) { l.add("DEBUG", msg, args) }
func (l *recLogger) Info(_ context.Context, msg string, args ...any)  { l.add("INFO", msg, args) }
func (l *recLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("WARN", msg, args) }
func (l *recLogger) Error(_ context.Context, msg string, args ...any) { l.add("ERROR", msg, args) }
func (l *recLogger) With(_ ...any) logging.Logger                     { return l }

func (l *recLogger) find(msg string) []logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logRecord
	for _, r := range l.records {
		if r.msg == msg {
			out = append(out, r)
		}
	}
	return out
}

func (l *recLogger) dump() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var b strings.Builder
	for _, r := range l.records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func argValue(r logRecord, key string) any {
	for i := 0; i+1 < len(r.args); i += 2 {
		if r.args[i] == key {
			return r.args[i+1]
		}
	}
	return nil
}
