package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// MemoryRepository keeps accounts in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
	fault *faultx.Injector
}

func NewMemoryRepository(fault *faultx.Injector) *MemoryRepository {
	return &MemoryRepository{fault: fault}
}

func (r *MemoryRepository) index(email string) int {
	for i := range r.users {
		if r.users[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.fault.Before(ctx, "accounts.create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(u.Email) >= 0 {
		return common.ErrDuplicateAccount
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, email string) (*models.User, error) {
	if err := r.fault.Before(ctx, "accounts.get"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(email)
	if i < 0 {
		return nil, common.ErrAccountNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, originalEmail string, u *models.User) error {
	if err := r.fault.Before(ctx, "accounts.update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(originalEmail)
	if i < 0 {
		return common.ErrAccountNotFound
	}
	if j := r.index(u.Email); j >= 0 && j != i {
		return common.ErrEmailTaken
	}
	created := r.users[i].CreatedAt
	r.users[i] = *u
	r.users[i].CreatedAt = created
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.User, error) {
	if err := r.fault.Before(ctx, "accounts.list"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
