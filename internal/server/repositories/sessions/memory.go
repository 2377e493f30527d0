package sessions

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	fault    *faultx.Injector
}

func NewMemoryRepository(fault *faultx.Injector) *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]models.Session), fault: fault}
}

func (r *MemoryRepository) Create(ctx context.Context, s *models.Session) error {
	if err := r.fault.Before(ctx, "sessions.create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	if err := r.fault.Before(ctx, "sessions.find"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.fault.Before(ctx, "sessions.delete"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
