package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docsynchub/docsync/internal/client/config"
	"github.com/docsynchub/docsync/internal/client/drivedocs"
	"github.com/docsynchub/docsync/internal/client/gemini"
	"github.com/docsynchub/docsync/internal/client/googleauth"
	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/client/repositories/categories"
	"github.com/docsynchub/docsync/internal/client/session"
	"github.com/docsynchub/docsync/internal/client/storage"
	"github.com/docsynchub/docsync/internal/filex"
	"github.com/docsynchub/docsync/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive dashboard application.
type App struct {
	config  *config.Config
	core    *session.Core
	suggest *gemini.Adapter
	db      *sql.DB
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// view is the document ordering of the last rendered list; the
	// numeric arguments of assign/clear/suggest resolve against it.
	view []models.Document
}

// NewApp wires storage, adapters and the sync core together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureSubDir("data")
	if err != nil {
		return nil, fmt.Errorf("prepare data directory: %w", err)
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, c.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	slot := googleauth.NewCredentialSlot()
	identity := googleauth.New(c.GoogleClientID, c.GoogleClientSecret, c.Scopes, slot, log)

	source, err := drivedocs.New(ctx, slot, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	suggest := gemini.New(c.GeminiAPIKey, c.GeminiModel, log)
	store := categories.NewSQLiteRepository(db)
	core := session.New(identity, source, store, suggest, models.DefaultCategories(), log)

	app := &App{
		config:  c,
		core:    core,
		suggest: suggest,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	identity.ShowVerification = func(userCode, verificationURI string) {
		fmt.Fprintf(app.out, "Open %s and enter code %s\n", verificationURI, userCode)
	}

	return app, nil
}

// Run bootstraps the core and hands control to the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.db.Close() }()

	if err := a.core.Initialize(ctx); err != nil {
		a.log.Error(ctx, "adapter bootstrap failed", "error", err)
		return fmt.Errorf("initialize: %w", err)
	}

	fmt.Fprintln(a.out, "Welcome to DocSync Hub (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.core.Snapshot().User != nil
}

// status renders the prompt suffix: signed-in user plus sync/error markers.
func (a *App) status() string {
	snap := a.core.Snapshot()

	s := ""
	if snap.User != nil {
		s = snap.User.Email
	}
	if snap.IsSyncing {
		s += " syncing"
	}
	if snap.Err != "" {
		s += " !"
	}
	if s != "" {
		return fmt.Sprintf("(%s)", s)
	}
	return ""
}
