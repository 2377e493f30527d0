// Package repomanager vends the repositories of one storage backend
// (memory, SQLite or PostgreSQL) and runs schema migrations.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dermasight/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/cases"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/messages"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/sessions"
)

// RepositoryManager gives access to the stores of a backend. Repositories
// obtained from the manager passed to InTx's callback share one transaction.
type RepositoryManager interface {
	Accounts() accounts.Repository
	Cases() cases.Repository
	Messages() messages.Repository
	Sessions() sessions.Repository

	// InTx runs fn atomically. fn must only use the manager it is given.
	InTx(ctx context.Context, fn func(ctx context.Context, tx RepositoryManager) error) error

	RunMigrations(ctx context.Context) error
	Close() error
}

// Driver names accepted by New.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// New opens the backend named by driver.
func New(driver, dsn string, opts ...MemoryOption) (RepositoryManager, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemoryRepositoryManager(opts...), nil
	case DriverSQLite:
		m, err := OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		return m, nil
	case DriverPostgres:
		m, err := OpenPostgres(dsn)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
