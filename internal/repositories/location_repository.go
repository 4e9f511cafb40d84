package repositories

import (
	"context"

	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines the interface for location data access.
type LocationRepository interface {
	Repository[models.Location]
	GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Location, error)
}

// GORMLocationRepository is a GORM implementation of LocationRepository.
type GORMLocationRepository struct {
	*gormRepository[models.Location]
}

// NewGORMLocationRepository creates a new instance of GORMLocationRepository.
func NewGORMLocationRepository(db *gorm.DB) *GORMLocationRepository {
	return &GORMLocationRepository{
		gormRepository: &gormRepository[models.Location]{
			db:         db,
			entity:     "location",
			primaryKey: "id_localizacao",
			mutable:    []string{"AidRequestID", "ZoneTypeID", "Latitude", "Longitude"},
			joins:      []string{"ZoneType"},
			keyOf:      func(l *models.Location) int { return l.ID },
		},
	}
}

// GetByAidRequestID retrieves the locations pinned to the aid request.
func (r *GORMLocationRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Location, error) {
	return r.findBy(ctx, "id_ajuda", aidRequestID)
}
