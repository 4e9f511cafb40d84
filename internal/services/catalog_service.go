package services

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
)

// CatalogService handles the lookup tables: user types, resource types and zone types.
// They have no references of their own, so writes go straight to the repository.
type CatalogService[T any] struct {
	base
	repo  repositories.Repository[T]
	setID func(*T, int)
	idOf  func(*T) int
}

// NewUserTypeService creates the service for user types.
func NewUserTypeService(repo repositories.UserTypeRepository, deps Deps) *CatalogService[models.UserType] {
	return &CatalogService[models.UserType]{
		base:  newBase(deps, "user type", "tipo-usuario"),
		repo:  repo,
		setID: func(t *models.UserType, id int) { t.ID = id },
		idOf:  func(t *models.UserType) int { return t.ID },
	}
}

// NewResourceTypeService creates the service for resource types.
func NewResourceTypeService(repo repositories.ResourceTypeRepository, deps Deps) *CatalogService[models.ResourceType] {
	return &CatalogService[models.ResourceType]{
		base:  newBase(deps, "resource type", "tipo-recurso"),
		repo:  repo,
		setID: func(t *models.ResourceType, id int) { t.ID = id },
		idOf:  func(t *models.ResourceType) int { return t.ID },
	}
}

// NewZoneTypeService creates the service for zone types.
func NewZoneTypeService(repo repositories.ZoneTypeRepository, deps Deps) *CatalogService[models.ZoneType] {
	return &CatalogService[models.ZoneType]{
		base:  newBase(deps, "zone type", "tipo-zona"),
		repo:  repo,
		setID: func(t *models.ZoneType, id int) { t.ID = id },
		idOf:  func(t *models.ZoneType) int { return t.ID },
	}
}

// GetAll retrieves every catalog entry.
func (s *CatalogService[T]) GetAll(ctx context.Context) ([]T, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// GetByID retrieves a single catalog entry.
func (s *CatalogService[T]) GetByID(ctx context.Context, id int) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return item, nil
}

// Create stores a new entry; any client supplied key is discarded.
func (s *CatalogService[T]) Create(ctx context.Context, item *T) (*T, error) {
	s.setID(item, 0)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}
	id := s.idOf(item)
	s.committed(actionCreated, id)
	return item, nil
}

// Update replaces the entry's name.
func (s *CatalogService[T]) Update(ctx context.Context, id int, item *T) error {
	s.setID(item, id)
	if err := s.repo.Update(ctx, item); err != nil {
		return s.fail(actionUpdated, id, s.translate("update", id, err))
	}
	s.committed(actionUpdated, id)
	return nil
}

// Delete removes the entry and, through the store's cascade, everything that references it.
func (s *CatalogService[T]) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}
