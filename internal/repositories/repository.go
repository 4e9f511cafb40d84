package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is wrapped by every repository when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// Repository defines the data access operations shared by every entity.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, entity *T) error
	// Update replaces the mutable columns of the row addressed by the entity's key.
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int) error
}
