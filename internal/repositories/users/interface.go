package users

import (
	"context"

	"github.com/dmitrijs2005/pmvault/internal/models"
)

// Repository stores and looks up vault owners.
type Repository interface {
	// Create inserts u and returns it with ID and CreatedAt populated.
	// A taken username yields common.ErrDuplicateUser.
	Create(ctx context.Context, u *models.UserCredential) (*models.UserCredential, error)

	// FindByUsername returns common.ErrorNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.UserCredential, error)
}
