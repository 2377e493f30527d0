package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/dermasight/internal/dbx"
	"github.com/dmitrijs2005/dermasight/internal/server/migrations"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/cases"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/messages"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/sessions"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed repositories bound either to the
// connection pool or, inside InTx, to a transaction.
type SQLRepositoryManager struct {
	db      *sql.DB
	q       dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepositoryManager wraps an open database.
func NewSQLRepositoryManager(db *sql.DB, d dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{db: db, q: db, dialect: d}
}

// OpenPostgres connects through the pgx stdlib driver.
func OpenPostgres(dsn string) (*SQLRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewSQLRepositoryManager(db, dbx.Postgres), nil
}

// OpenSQLite opens a SQLite file. A single connection is used so writers
// never contend for the database lock.
func OpenSQLite(dsn string) (*SQLRepositoryManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return NewSQLRepositoryManager(db, dbx.SQLite), nil
}

func (m *SQLRepositoryManager) Accounts() accounts.Repository {
	return accounts.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) Cases() cases.Repository {
	return cases.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) Messages() messages.Repository {
	return messages.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) Sessions() sessions.Repository {
	return sessions.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, tx RepositoryManager) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLRepositoryManager{db: m.db, q: tx, dialect: m.dialect})
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	dialect, dir := "pgx", "postgres"
	if m.dialect == dbx.SQLite {
		dialect, dir = "sqlite3", "sqlite"
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, dir)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
