package entries

import (
	"context"

	"github.com/dmitrijs2005/pmvault/internal/models"
)

// Repository describes owner-scoped CRUD operations for vault entries.
type Repository interface {
	// Create inserts e and returns it with ID and CreatedAt populated.
	Create(ctx context.Context, e *models.Entry) (*models.Entry, error)

	// ListByOwner returns the owner's entries, newest first.
	ListByOwner(ctx context.Context, userID int64) ([]models.EntrySummary, error)

	// GetByID returns common.ErrorNotFound if the entry is missing or owned
	// by someone else.
	GetByID(ctx context.Context, userID, id int64) (*models.Entry, error)

	// DeleteByID removes the entry. Same not-found rule as GetByID.
	DeleteByID(ctx context.Context, userID, id int64) error
}
