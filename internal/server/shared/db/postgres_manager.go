package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
	"github.com/ykarpenko/sessionkeeper/internal/server/migrations"
	"github.com/ykarpenko/sessionkeeper/internal/server/profiles"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	profiles profiles.Repository
	accounts accounts.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	profilesRepo, err := profiles.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("profiles repo creation error: %w", err)
	}

	accountsRepo, err := accounts.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("accounts repo creation error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:       db,
		profiles: profilesRepo,
		accounts: accountsRepo,
	}, nil
}
