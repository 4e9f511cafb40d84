package repositories

import (
	"context"
	"errors"
	"fmt"

	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	*gormRepository[models.User]
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		gormRepository: &gormRepository[models.User]{
			db:         db,
			entity:     "user",
			primaryKey: "id_usuario",
			mutable:    []string{"Name", "Email", "Password", "UserTypeID"},
			joins:      []string{"UserType"},
			keyOf:      func(u *models.User) int { return u.ID },
		},
	}
}

// GetByEmail retrieves the first user registered with the given email.
// Emails are not unique, so the oldest match wins.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.read(ctx).Where("email = ?", email).Order("id_usuario asc").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}
