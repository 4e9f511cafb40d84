package services

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
)

// RatingService handles business logic related to ratings.
type RatingService struct {
	base
	repo        repositories.RatingRepository
	users       repositories.UserRepository
	aidRequests repositories.AidRequestRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(repo repositories.RatingRepository, users repositories.UserRepository, aidRequests repositories.AidRequestRepository, deps Deps) *RatingService {
	return &RatingService{
		base:        newBase(deps, "rating", "avaliacao"),
		repo:        repo,
		users:       users,
		aidRequests: aidRequests,
	}
}

// GetAllRatings retrieves all ratings.
func (s *RatingService) GetAllRatings(ctx context.Context) ([]models.Rating, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// GetRatingByID retrieves a single rating.
func (s *RatingService) GetRatingByID(ctx context.Context, id int) (*models.Rating, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return item, nil
}

// GetRatingsByAidRequest lists the ratings left on an existing aid request.
func (s *RatingService) GetRatingsByAidRequest(ctx context.Context, aidRequestID int) ([]models.Rating, error) {
	if err := requireExists(ctx, s.aidRequests, "aid request", aidRequestID); err != nil {
		return nil, err
	}
	items, err := s.repo.GetByAidRequestID(ctx, aidRequestID)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// CreateRating stores a rating stamped with the current time. The score is not range checked.
func (s *RatingService) CreateRating(ctx context.Context, item *models.Rating) (*models.Rating, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	item.ID = 0
	item.RatedAt = s.now()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}

	s.committed(actionCreated, item.ID)
	return reload[models.Rating](ctx, s.base, s.repo, item.ID, item), nil
}

// UpdateRating replaces the mutable fields; the rating date is kept.
func (s *RatingService) UpdateRating(ctx context.Context, id int, item *models.Rating) error {
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

// DeleteRating removes a rating.
func (s *RatingService) DeleteRating(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}

func (s *RatingService) validate(ctx context.Context, item *models.Rating) error {
	return validateReferences(ctx, s.entity,
		ref(s.users, "user", "usuarioId", item.UserID),
		ref(s.aidRequests, "aid request", "ajudaId", item.AidRequestID),
	)
}
