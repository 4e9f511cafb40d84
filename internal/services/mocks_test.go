package services_test

import (
	"context"

	"solidarmap/internal/models"
	"solidarmap/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repositories.Repository
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	MockRepository[models.User]
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockAidRequestRepository is a mock implementation of repositories.AidRequestRepository
type MockAidRequestRepository struct {
	MockRepository[models.AidRequest]
}

func (m *MockAidRequestRepository) GetByUserID(ctx context.Context, userID int) ([]models.AidRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AidRequest), args.Error(1)
}

// MockRatingRepository is a mock implementation of repositories.RatingRepository
type MockRatingRepository struct {
	MockRepository[models.Rating]
}

func (m *MockRatingRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Rating, error) {
	args := m.Called(ctx, aidRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

// MockLocationRepository is a mock implementation of repositories.LocationRepository
type MockLocationRepository struct {
	MockRepository[models.Location]
}

func (m *MockLocationRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Location, error) {
	args := m.Called(ctx, aidRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

// MockMessageRepository is a mock implementation of repositories.MessageRepository
type MockMessageRepository struct {
	MockRepository[models.Message]
}

func (m *MockMessageRepository) GetByAidRequestID(ctx context.Context, aidRequestID int) ([]models.Message, error) {
	args := m.Called(ctx, aidRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

// MockEventPublisher records published change events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e rabbitmq.Event) bool { return e.Type == eventType })
}
