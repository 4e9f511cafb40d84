package repositories

import (
	"context"

	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines the interface for rating data access.
type RatingRepository interface {
	Repository[models.Rating]
	GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Rating, error)
}

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	*gormRepository[models.Rating]
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		gormRepository: &gormRepository[models.Rating]{
			db:         db,
			entity:     "rating",
			primaryKey: "id_avaliacao",
			mutable:    []string{"UserID", "AidRequestID", "Score", "Comment"},
			joins:      []string{"User"},
			keyOf:      func(r *models.Rating) int { return r.ID },
		},
	}
}

// GetByAidRequestID retrieves every rating left on the aid request.
func (r *GORMRatingRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Rating, error) {
	return r.findBy(ctx, "id_ajuda", aidRequestID)
}
