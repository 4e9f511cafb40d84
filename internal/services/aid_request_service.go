package services

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
)

// AidRequestService handles business logic related to aid requests.
type AidRequestService struct {
	base
	repo          repositories.AidRequestRepository
	users         repositories.UserRepository
	resourceTypes repositories.ResourceTypeRepository
}

// NewAidRequestService creates a new AidRequestService.
func NewAidRequestService(repo repositories.AidRequestRepository, users repositories.UserRepository, resourceTypes repositories.ResourceTypeRepository, deps Deps) *AidRequestService {
	return &AidRequestService{
		base:          newBase(deps, "aid request", "ajuda"),
		repo:          repo,
		users:         users,
		resourceTypes: resourceTypes,
	}
}

// GetAllAidRequests retrieves all aid requests with their user and resource type.
func (s *AidRequestService) GetAllAidRequests(ctx context.Context) ([]models.AidRequest, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// GetAidRequestByID retrieves a single aid request.
func (s *AidRequestService) GetAidRequestByID(ctx context.Context, id int) (*models.AidRequest, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return item, nil
}

// GetAidRequestsByUser lists the requests posted by a user. The user must exist.
func (s *AidRequestService) GetAidRequestsByUser(ctx context.Context, userID int) ([]models.AidRequest, error) {
	if err := requireExists(ctx, s.users, "user", userID); err != nil {
		return nil, err
	}
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// CreateAidRequest stores a new aid request stamped with the current time.
func (s *AidRequestService) CreateAidRequest(ctx context.Context, item *models.AidRequest) (*models.AidRequest, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	item.ID = 0
	item.PublishedAt = s.now()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}

	s.committed(actionCreated, item.ID)
	return reload[models.AidRequest](ctx, s.base, s.repo, item.ID, item), nil
}

// UpdateAidRequest replaces the mutable fields; the publish date is kept.
func (s *AidRequestService) UpdateAidRequest(ctx context.Context, id int, item *models.AidRequest) error {
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

// DeleteAidRequest removes the request with its ratings, locations and messages.
func (s *AidRequestService) DeleteAidRequest(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}

func (s *AidRequestService) validate(ctx context.Context, item *models.AidRequest) error {
	return validateReferences(ctx, s.entity,
		ref(s.users, "user", "usuarioId", item.UserID),
		ref(s.resourceTypes, "resource type", "tipoRecursoId", item.ResourceTypeID),
	)
}
