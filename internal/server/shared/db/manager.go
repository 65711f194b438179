package db

import (
	"context"
	"database/sql"

	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
	"github.com/ykarpenko/sessionkeeper/internal/server/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Profiles() profiles.Repository
	Accounts() accounts.Repository
}
