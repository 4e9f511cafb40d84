package database

import (
	"context"
	"fmt"

	"solidarmap/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	defaultUserTypes     = []string{"Voluntário", "Solicitante", "Organização"}
	defaultResourceTypes = []string{"Água", "Alimento", "Abrigo", "Medicamento", "Roupa"}
	defaultZoneTypes     = []string{"Urbana", "Rural", "Ribeirinha", "Encosta"}
)

// SeedResult counts the catalog rows inserted by Seed.
type SeedResult struct {
	UserTypes     int
	ResourceTypes int
	ZoneTypes     int
}

// Seed fills the lookup catalogs with default entries. Tables that already hold
// rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) (SeedResult, error) {
	var result SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result.UserTypes, err = seedCatalog(tx, defaultUserTypes, func(name string) *models.UserType {
			return &models.UserType{Name: name}
		})
		if err != nil {
			return err
		}
		result.ResourceTypes, err = seedCatalog(tx, defaultResourceTypes, func(name string) *models.ResourceType {
			return &models.ResourceType{Name: name}
		})
		if err != nil {
			return err
		}
		result.ZoneTypes, err = seedCatalog(tx, defaultZoneTypes, func(name string) *models.ZoneType {
			return &models.ZoneType{Name: name}
		})
		return err
	})
	if err != nil {
		return SeedResult{}, err
	}

	log.WithFields(logrus.Fields{
		"user_types":     result.UserTypes,
		"resource_types": result.ResourceTypes,
		"zone_types":     result.ZoneTypes,
	}).Info("catalogs seeded")
	return result, nil
}

func seedCatalog[T any](tx *gorm.DB, names []string, build func(string) *T) (int, error) {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog rows: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	for _, name := range names {
		if err := tx.Create(build(name)).Error; err != nil {
			return 0, fmt.Errorf("failed to seed %q: %w", name, err)
		}
	}
	return len(names), nil
}
