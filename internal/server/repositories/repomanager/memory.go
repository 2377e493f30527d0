package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/cases"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/messages"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/sessions"
)

// MemoryRepositoryManager keeps every store in process memory. Transactions
// are serialized with a manager-wide lock; there is no rollback.
type MemoryRepositoryManager struct {
	txMu     *sync.Mutex
	accounts *accounts.MemoryRepository
	cases    *cases.MemoryRepository
	messages *messages.MemoryRepository
	sessions *sessions.MemoryRepository
}

// MemoryOption configures the memory backend.
type MemoryOption func(*faultx.Injector)

// WithFaults sets the simulated latency and failure hook of every store.
func WithFaults(f faultx.Injector) MemoryOption {
	return func(i *faultx.Injector) { *i = f }
}

func NewMemoryRepositoryManager(opts ...MemoryOption) *MemoryRepositoryManager {
	fault := &faultx.Injector{}
	for _, opt := range opts {
		opt(fault)
	}
	return &MemoryRepositoryManager{
		txMu:     &sync.Mutex{},
		accounts: accounts.NewMemoryRepository(fault),
		cases:    cases.NewMemoryRepository(fault),
		messages: messages.NewMemoryRepository(fault),
		sessions: sessions.NewMemoryRepository(fault),
	}
}

func (m *MemoryRepositoryManager) Accounts() accounts.Repository { return m.accounts }
func (m *MemoryRepositoryManager) Cases() cases.Repository       { return m.cases }
func (m *MemoryRepositoryManager) Messages() messages.Repository { return m.messages }
func (m *MemoryRepositoryManager) Sessions() sessions.Repository { return m.sessions }

func (m *MemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, tx RepositoryManager) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
