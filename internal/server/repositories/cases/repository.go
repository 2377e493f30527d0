// Package cases stores analysis cases keyed by case id.
//
// Listing order is part of the contract: timestamp descending with a
// missing timestamp sorting as earliest, ties broken by most recent upsert.
package cases

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

type Repository interface {
	// Upsert stores c, replacing any case with the same id. The stored case
	// becomes the most recent write.
	Upsert(ctx context.Context, c *models.Case) error
	// Update replaces the case with the same id in place. It reports false
	// when no such case exists.
	Update(ctx context.Context, c *models.Case) (bool, error)
	// Get returns the case or common.ErrCaseNotFound.
	Get(ctx context.Context, id string) (*models.Case, error)
	// List returns all cases in listing order.
	List(ctx context.Context) ([]models.Case, error)
}
