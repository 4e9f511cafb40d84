package repositories

import (
	"context"

	"solidarmap/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	Repository[models.Message]
	GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Message, error)
}

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	*gormRepository[models.Message]
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		gormRepository: &gormRepository[models.Message]{
			db:         db,
			entity:     "message",
			primaryKey: "id_mensagem",
			mutable:    []string{"AidRequestID", "UserID", "Content"},
			joins:      []string{"User"},
			keyOf:      func(m *models.Message) int { return m.ID },
		},
	}
}

// GetByAidRequestID retrieves the messages exchanged on the aid request.
func (r *GORMMessageRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Message, error) {
	return r.findBy(ctx, "id_ajuda", aidRequestID)
}
