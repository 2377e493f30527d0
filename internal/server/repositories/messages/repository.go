// Package messages stores per-case conversation logs. Logs are append-only
// and returned in insertion order.
package messages

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

type Repository interface {
	// Append adds m to the log of caseID.
	Append(ctx context.Context, caseID string, m models.Message) error
	// List returns the log of caseID; empty if there is none.
	List(ctx context.Context, caseID string) ([]models.Message, error)
}
