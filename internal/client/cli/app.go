package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/ykarpenko/sessionkeeper/internal/client/config"
	"github.com/ykarpenko/sessionkeeper/internal/client/identity"
	"github.com/ykarpenko/sessionkeeper/internal/client/localstore"
	"github.com/ykarpenko/sessionkeeper/internal/client/profile"
	"github.com/ykarpenko/sessionkeeper/internal/client/session"
	"github.com/ykarpenko/sessionkeeper/internal/common"
)

type App struct {
	config      *config.Config
	coordinator session.Coordinator
	db          *sql.DB
	userEmail   string
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := localstore.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, err
	}

	provider := identity.NewRESTProvider(c.IdentityEndpoint, c.RequestTimeout)
	store := profile.NewRESTStore(c.ProfileStoreURL, c.RequestTimeout)
	local := localstore.NewSQLiteStore(db)

	coordinator := session.NewCoordinator(provider, store, local, session.FirstMatch)

	return &App{
		config:      c,
		coordinator: coordinator,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a mirrored session if one exists and starts the REPL. It
// blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if user, err := a.coordinator.CurrentUser(ctx); err == nil {
		a.userEmail = user.Email
	} else if !errors.Is(err, common.ErrNoSession) {
		printlnFn("Warning: could not restore session:", err.Error())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return "(" + a.userEmail + ")"
}
