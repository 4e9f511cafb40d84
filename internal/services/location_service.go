package services

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
)

// LocationService handles business logic related to aid request locations.
type LocationService struct {
	base
	repo        repositories.LocationRepository
	aidRequests repositories.AidRequestRepository
	zoneTypes   repositories.ZoneTypeRepository
}

// NewLocationService creates a new LocationService.
func NewLocationService(repo repositories.LocationRepository, aidRequests repositories.AidRequestRepository, zoneTypes repositories.ZoneTypeRepository, deps Deps) *LocationService {
	return &LocationService{
		base:        newBase(deps, "location", "localizacao"),
		repo:        repo,
		aidRequests: aidRequests,
		zoneTypes:   zoneTypes,
	}
}

// GetAllLocations retrieves all locations.
func (s *LocationService) GetAllLocations(ctx context.Context) ([]models.Location, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// GetLocationByID retrieves a single location.
func (s *LocationService) GetLocationByID(ctx context.Context, id int) (*models.Location, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return item, nil
}

// GetLocationsByAidRequest lists the locations pinned to an existing aid request.
func (s *LocationService) GetLocationsByAidRequest(ctx context.Context, aidRequestID int) ([]models.Location, error) {
	if err := requireExists(ctx, s.aidRequests, "aid request", aidRequestID); err != nil {
		return nil, err
	}
	items, err := s.repo.GetByAidRequestID(ctx, aidRequestID)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// CreateLocation stores a new location.
func (s *LocationService) CreateLocation(ctx context.Context, item *models.Location) (*models.Location, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	item.ID = 0
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}

	s.committed(actionCreated, item.ID)
	return reload[models.Location](ctx, s.base, s.repo, item.ID, item), nil
}

// UpdateLocation replaces the mutable fields of a location.
func (s *LocationService) UpdateLocation(ctx context.Context, id int, item *models.Location) error {
	if err := requireExists(ctx, s.repo, s.entity, id); err != nil {
		return s.fail(actionUpdated, id, err)
	}
	if err := s.validate(ctx, item); err != nil {
		return s.fail(actionUpdated, id, err)
	}

	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return s.fail(actionUpdated, id, s.translate("update", id, err))
	}
	s.committed(actionUpdated, id)
	return nil
}

// DeleteLocation removes a location.
func (s *LocationService) DeleteLocation(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}

func (s *LocationService) validate(ctx context.Context, item *models.Location) error {
	return validateReferences(ctx, s.entity,
		ref(s.aidRequests, "aid request", "ajudaId", item.AidRequestID),
		ref(s.zoneTypes, "zone type", "zonaId", item.ZoneTypeID),
	)
}
