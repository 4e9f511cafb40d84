package repositories

import (
	"context"

	"solidarmap/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Repository[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
