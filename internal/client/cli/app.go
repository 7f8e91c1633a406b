package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/dmitrijs2005/authboot/internal/client/client"
	"github.com/dmitrijs2005/authboot/internal/client/config"
	"github.com/dmitrijs2005/authboot/internal/client/page"
	"github.com/dmitrijs2005/authboot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authboot/internal/client/services"
	"github.com/dmitrijs2005/authboot/internal/client/tokenstore"
	"github.com/dmitrijs2005/authboot/internal/logging"
	"github.com/dmitrijs2005/authboot/internal/validation"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	page        *page.HTMLDocument
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp wires storage, the HTTP client, the page and the auth service from c.
// A missing page file is not fatal: heading updates are then skipped.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.BaseURL, http.DefaultClient)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config: c,
		db:     db,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	deps := services.AuthDeps{
		Client:    apiClient,
		Tokens:    tokenstore.New(metadata.NewSQLiteRepository(db)),
		Validator: validation.New(c.EmailDomain, validation.DefaultMessages),
		TokenPath: c.TokenPath,
		Logger:    logger,
	}

	doc, err := loadPage(c.PagePath)
	switch {
	case err != nil:
		logger.Warn(ctx, "page not loaded, heading updates disabled", "path", c.PagePath, "error", err)
	case doc != nil:
		a.page = doc
		deps.Heading = page.NewHeadingUpdater(doc, c.HeadingSelector)
	}

	a.authService = services.NewAuthService(deps)
	return a, nil
}

// loadPage returns nil, nil when path is empty or does not exist.
func loadPage(path string) (*page.HTMLDocument, error) {
	if path == "" {
		return nil, nil
	}
	doc, err := page.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return doc, err
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// savePage writes the page back after its heading changed.
func (a *App) savePage(ctx context.Context) {
	if a.page == nil {
		return
	}
	if err := a.page.SaveFile(a.config.PagePath); err != nil {
		a.log.Error(ctx, "error saving page", "path", a.config.PagePath, "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok, err := a.authService.Token(ctx)
	return err == nil && ok
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
