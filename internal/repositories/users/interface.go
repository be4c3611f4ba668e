package users

import (
	"context"

	"github.com/emontoya05/healthtrack/internal/models"
)

// Repository describes persistence operations for User rows.
// Lookups by username are case-insensitive.
type Repository interface {
	// Create inserts a new user and returns it with the store-assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the matching user or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// ExistsByUsername reports whether a user with that username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
