// Package sessions declares the repository contract for sign-in sessions.
// A session row is the server-side marker of the current user: it is
// written on login or registration and removed on logout.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Repository defines operations for issuing, retrieving, and revoking sessions.
type Repository interface {
	// Create stores s.
	Create(ctx context.Context, s *models.Session) error

	// Find returns the session with the given id, or common.ErrNotFound.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
