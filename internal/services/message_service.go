package services

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
)

// MessageService handles business logic related to messages on aid requests.
type MessageService struct {
	base
	repo        repositories.MessageRepository
	aidRequests repositories.AidRequestRepository
	users       repositories.UserRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository, aidRequests repositories.AidRequestRepository, users repositories.UserRepository, deps Deps) *MessageService {
	return &MessageService{
		base:        newBase(deps, "message", "mensagem"),
		repo:        repo,
		aidRequests: aidRequests,
		users:       users,
	}
}

// GetAllMessages retrieves all messages.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// GetMessageByID retrieves a single message.
func (s *MessageService) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return item, nil
}

// GetMessagesByAidRequest lists the messages written on an existing aid request.
func (s *MessageService) GetMessagesByAidRequest(ctx context.Context, aidRequestID int) ([]models.Message, error) {
	if err := requireExists(ctx, s.aidRequests, "aid request", aidRequestID); err != nil {
		return nil, err
	}
	items, err := s.repo.GetByAidRequestID(ctx, aidRequestID)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return items, nil
}

// CreateMessage stores a message stamped with the current time.
func (s *MessageService) CreateMessage(ctx context.Context, item *models.Message) (*models.Message, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	item.ID = 0
	item.SentAt = s.now()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}

	s.committed(actionCreated, item.ID)
	return reload[models.Message](ctx, s.base, s.repo, item.ID, item), nil
}

// UpdateMessage replaces the content and references; the send date is kept.
func (s *MessageService) UpdateMessage(ctx context.Context, id int, item *models.Message) error {
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

// DeleteMessage removes a message.
func (s *MessageService) DeleteMessage(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}

func (s *MessageService) validate(ctx context.Context, item *models.Message) error {
	return validateReferences(ctx, s.entity,
		ref(s.aidRequests, "aid request", "ajudaId", item.AidRequestID),
		ref(s.users, "user", "usuarioId", item.UserID),
	)
}
