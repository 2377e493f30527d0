package cases

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// MemoryRepository keeps cases in a slice ordered by write recency: an
// upsert moves the case to the front, an update keeps its position.
type MemoryRepository struct {
	mu    sync.RWMutex
	cases []models.Case
	fault *faultx.Injector
}

func NewMemoryRepository(fault *faultx.Injector) *MemoryRepository {
	return &MemoryRepository{fault: fault}
}

func (r *MemoryRepository) index(id string) int {
	for i := range r.cases {
		if r.cases[i].ID() == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) Upsert(ctx context.Context, c *models.Case) error {
	if err := r.fault.Before(ctx, "cases.upsert"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.index(c.ID()); i >= 0 {
		r.cases = append(r.cases[:i], r.cases[i+1:]...)
	}
	r.cases = append([]models.Case{*c}, r.cases...)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *models.Case) (bool, error) {
	if err := r.fault.Before(ctx, "cases.update"); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(c.ID())
	if i < 0 {
		return false, nil
	}
	r.cases[i] = *c
	return true, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Case, error) {
	if err := r.fault.Before(ctx, "cases.get"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, common.ErrCaseNotFound
	}
	c := r.cases[i]
	return &c, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Case, error) {
	if err := r.fault.Before(ctx, "cases.list"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]models.Case, len(r.cases))
	copy(out, r.cases)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Timestamp, out[j].Timestamp
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.UnixMilli() > b.UnixMilli()
	})
	return out, nil
}
