// Package accounts stores user accounts keyed by lower-cased email.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Repository is the account store contract shared by all backends.
// Emails passed in must already be normalized.
type Repository interface {
	// Create inserts u; common.ErrDuplicateAccount if the email is taken.
	Create(ctx context.Context, u *models.User) error
	// Get returns the account or common.ErrAccountNotFound.
	Get(ctx context.Context, email string) (*models.User, error)
	// Update replaces the account stored under originalEmail with u, which
	// may carry a new email. common.ErrAccountNotFound if absent.
	Update(ctx context.Context, originalEmail string, u *models.User) error
	// List returns every account in creation order.
	List(ctx context.Context) ([]models.User, error)
}
