package repositories

import (
	"context"

	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// AidRequestRepository defines the interface for aid request data access.
type AidRequestRepository interface {
	Repository[models.AidRequest]
	GetByUserID(ctx context.Context, userID int) ([]models.AidRequest, error)
}

// GORMAidRequestRepository is a GORM implementation of AidRequestRepository.
type GORMAidRequestRepository struct {
	*gormRepository[models.AidRequest]
}

// NewGORMAidRequestRepository creates a new instance of GORMAidRequestRepository.
func NewGORMAidRequestRepository(db *gorm.DB) *GORMAidRequestRepository {
	return &GORMAidRequestRepository{
		gormRepository: &gormRepository[models.AidRequest]{
			db:         db,
			entity:     "aid request",
			primaryKey: "id_ajuda",
			mutable:    []string{"UserID", "ResourceTypeID", "Description", "Status"},
			joins:      []string{"User", "ResourceType"},
			keyOf:      func(a *models.AidRequest) int { return a.ID },
		},
	}
}

// GetByUserID retrieves every aid request posted by the user.
func (r *GORMAidRequestRepository) GetByUserID(ctx context.Context, userID int) ([]models.AidRequest, error) {
	return r.findBy(ctx, "id_usuario", userID)
}
