package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/config"
	"github.com/dmitrijs2005/pmvault/internal/cryptox"
	"github.com/dmitrijs2005/pmvault/internal/database"
	"github.com/dmitrijs2005/pmvault/internal/logging"
	"github.com/dmitrijs2005/pmvault/internal/services"
	"github.com/google/uuid"
)

// App carries the state of one pmvault invocation.
type App struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int

	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	authService  services.AuthService
	entryService services.EntryService

	closers []io.Closer
}

// NewApp returns an App reading from in and writing to out. fd is the file
// descriptor checked for a terminal when prompting for passwords.
func NewApp(in io.Reader, out io.Writer, fd int) *App {
	return &App{reader: bufio.NewReader(in), out: out, fd: fd}
}

// setup wires config, audit log, database and services. It runs once per
// invocation, before any subcommand.
func (a *App) setup(ctx context.Context, cfg *config.Config) error {
	a.config = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, logCloser, err := logging.NewFileLogger(cfg.LogPath, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.closers = append(a.closers, logCloser)
	a.log = logger.With("invocation", uuid.NewString())

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	a.db = db
	a.closers = append(a.closers, db)
	a.log.Debug(ctx, "database initialized", "path", cfg.DBPath)

	hasher, err := cryptox.NewHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}
	a.authService, err = services.NewAuthService(db, hasher, cryptox.NewKeyDeriver(), a.log)
	if err != nil {
		return err
	}
	a.entryService = services.NewEntryService(db, services.NewSecretCodec(cryptox.NewCipher()), a.log)
	return nil
}

// Close releases the database and the log file in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// authenticate prompts for credentials and logs in. The caller must Close
// the returned session.
func (a *App) authenticate(ctx context.Context) (*services.Session, error) {
	username, err := GetSimpleText(a.reader, "Username: ", a.out)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errUsernameRequired
	}

	password, err := GetPassword(a.reader, a.fd, "Master password: ", a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	return a.authService.Login(ctx, username, password)
}

// Run executes the command tree for args on app and prints a failure to
// errOut. It returns the process exit code.
func Run(ctx context.Context, app *App, args []string, errOut io.Writer) int {
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(app.out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(errOut, userMessage(err))
		return 1
	}
	return 0
}

// Execute runs pmvault against the process stdin/stdout.
func Execute(ctx context.Context, args []string) int {
	app := NewApp(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
	defer app.Close()

	return Run(ctx, app, args, os.Stderr)
}
