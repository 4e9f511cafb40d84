package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository is the GORM implementation of Repository shared by the entity repositories.
type gormRepository[T any] struct {
	db         *gorm.DB
	entity     string
	primaryKey string
	// mutable lists the fields written by Update. Key and creation timestamps are never in it.
	mutable []string
	// joins are the relations preloaded on reads so display names can be resolved.
	joins []string
	keyOf func(*T) int
}

func (r *gormRepository[T]) read(ctx context.Context) *gorm.DB {
	query := r.db.WithContext(ctx)
	for _, join := range r.joins {
		query = query.Preload(join)
	}
	return query
}

// GetAll retrieves every row in insertion order with its joins resolved.
func (r *gormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.read(ctx).Order(r.primaryKey + " asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", r.entity, err)
	}
	return rows, nil
}

// GetByID retrieves a single row by its key with its joins resolved.
func (r *gormRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var row T
	if err := r.read(ctx).First(&row, r.primaryKey+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %d not found: %w", r.entity, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", r.entity, id, err)
	}
	return &row, nil
}

// findBy retrieves every row whose column equals value, in insertion order.
func (r *gormRepository[T]) findBy(ctx context.Context, column string, value any) ([]T, error) {
	rows := make([]T, 0)
	if err := r.read(ctx).Where(column+" = ?", value).Order(r.primaryKey + " asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s by %s: %w", r.entity, column, err)
	}
	return rows, nil
}

// Exists reports whether a row with the given key is stored.
func (r *gormRepository[T]) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(r.primaryKey+" = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", r.entity, id, err)
	}
	return count > 0, nil
}

// Create inserts the entity; the store assigns its key.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

// Update overwrites the mutable columns, zero values included.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	id := r.keyOf(entity)
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where(r.primaryKey+" = ?", id).
		Select(r.mutable).
		Updates(entity)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s: %w", r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %d not found for update: %w", r.entity, id, ErrNotFound)
	}
	return nil
}

// Delete removes the row; dependent rows go with it through ON DELETE CASCADE.
func (r *gormRepository[T]) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(new(T), r.primaryKey+" = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %d not found for deletion: %w", r.entity, id, ErrNotFound)
	}
	return nil
}
