package repositories

import (
	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// UserTypeRepository defines the interface for user type data access.
type UserTypeRepository interface {
	Repository[models.UserType]
}

// ResourceTypeRepository defines the interface for resource type data access.
type ResourceTypeRepository interface {
	Repository[models.ResourceType]
}

// ZoneTypeRepository defines the interface for zone type data access.
type ZoneTypeRepository interface {
	Repository[models.ZoneType]
}

// GORMUserTypeRepository is a GORM implementation of UserTypeRepository.
type GORMUserTypeRepository struct {
	*gormRepository[models.UserType]
}

// NewGORMUserTypeRepository creates a new GORMUserTypeRepository.
func NewGORMUserTypeRepository(db *gorm.DB) *GORMUserTypeRepository {
	return &GORMUserTypeRepository{
		gormRepository: &gormRepository[models.UserType]{
			db:         db,
			entity:     "user type",
			primaryKey: "id_tipo_usuario",
			mutable:    []string{"Name"},
			keyOf:      func(t *models.UserType) int { return t.ID },
		},
	}
}

// GORMResourceTypeRepository is a GORM implementation of ResourceTypeRepository.
type GORMResourceTypeRepository struct {
	*gormRepository[models.ResourceType]
}

// NewGORMResourceTypeRepository creates a new GORMResourceTypeRepository.
func NewGORMResourceTypeRepository(db *gorm.DB) *GORMResourceTypeRepository {
	return &GORMResourceTypeRepository{
		gormRepository: &gormRepository[models.ResourceType]{
			db:         db,
			entity:     "resource type",
			primaryKey: "id_recurso",
			mutable:    []string{"Name"},
			keyOf:      func(t *models.ResourceType) int { return t.ID },
		},
	}
}

// GORMZoneTypeRepository is a GORM implementation of ZoneTypeRepository.
type GORMZoneTypeRepository struct {
	*gormRepository[models.ZoneType]
}

// NewGORMZoneTypeRepository creates a new GORMZoneTypeRepository.
func NewGORMZoneTypeRepository(db *gorm.DB) *GORMZoneTypeRepository {
	return &GORMZoneTypeRepository{
		gormRepository: &gormRepository[models.ZoneType]{
			db:         db,
			entity:     "zone type",
			primaryKey: "id_zona",
			mutable:    []string{"Name"},
			keyOf:      func(t *models.ZoneType) int { return t.ID },
		},
	}
}
