package messages

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	logs  map[string][]models.Message
	fault *faultx.Injector
}

func NewMemoryRepository(fault *faultx.Injector) *MemoryRepository {
	return &MemoryRepository{logs: make(map[string][]models.Message), fault: fault}
}

func (r *MemoryRepository) Append(ctx context.Context, caseID string, m models.Message) error {
	if err := r.fault.Before(ctx, "messages.append"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[caseID] = append(r.logs[caseID], m)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, caseID string) ([]models.Message, error) {
	if err := r.fault.Before(ctx, "messages.list"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, len(r.logs[caseID]))
	copy(out, r.logs[caseID])
	return out, nil
}
