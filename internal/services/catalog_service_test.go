package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"solidarmap/internal/models"
	"solidarmap/internal/monitoring"
	"solidarmap/internal/repositories"
	"solidarmap/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResourceTypeRepository struct {
	MockRepository[models.ResourceType]
}

func TestCatalogService_GetAll(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	service := services.NewResourceTypeService(mockRepo, services.Deps{})

	expected := []models.ResourceType{{ID: 1, Name: "Água"}, {ID: 2, Name: "Alimento"}}
	mockRepo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	items, err := service.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetByID(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	service := services.NewResourceTypeService(mockRepo, services.Deps{})

	expected := &models.ResourceType{ID: 1, Name: "Água"}
	mockRepo.On("GetByID", mock.Anything, 1).Return(expected, nil).Once()
	item, err := service.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, item)

	mockRepo.On("GetByID", mock.Anything, 99).
		Return(nil, fmt.Errorf("resource type with ID 99 not found: %w", repositories.ErrNotFound)).Once()
	item, err = service.GetByID(context.Background(), 99)
	assert.Nil(t, item)
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "resource type with ID 99 not found", err.Error())

	mockRepo.On("GetByID", mock.Anything, 5).Return(nil, errors.New("connection reset")).Once()
	_, err = service.GetByID(context.Background(), 5)
	var se *services.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "connection reset", err.Error())

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Create(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	events := new(MockEventPublisher)
	metrics := monitoring.New()
	service := services.NewResourceTypeService(mockRepo, services.Deps{Events: events, Metrics: metrics})

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.ResourceType) bool { return r.ID == 0 })).
		Run(func(args mock.Arguments) { args.Get(1).(*models.ResourceType).ID = 3 }).
		Return(nil).Once()
	events.On("PublishEvent", eventOfType("tipo-recurso.created")).Return(nil).Once()

	created, err := service.Create(context.Background(), &models.ResourceType{ID: 42, Name: "Abrigo"})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, "Abrigo", created.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EntityWrites.WithLabelValues("tipo-recurso", "created", "ok")))
	mockRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCatalogService_CreateStorageFailure(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	events := new(MockEventPublisher)
	service := services.NewResourceTypeService(mockRepo, services.Deps{Events: events})

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	created, err := service.Create(context.Background(), &models.ResourceType{Name: "Abrigo"})

	assert.Nil(t, created)
	var se *services.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "disk full", err.Error())
	events.AssertNotCalled(t, "PublishEvent", mock.Anything)
}

func TestCatalogService_Update(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	service := services.NewResourceTypeService(mockRepo, services.Deps{})

	mockRepo.On("Update", mock.Anything, &models.ResourceType{ID: 1, Name: "Água potável"}).Return(nil).Once()
	err := service.Update(context.Background(), 1, &models.ResourceType{Name: "Água potável"})
	assert.NoError(t, err)

	mockRepo.On("Update", mock.Anything, &models.ResourceType{ID: 9, Name: "x"}).
		Return(fmt.Errorf("resource type with ID 9 not found for update: %w", repositories.ErrNotFound)).Once()
	err = service.Update(context.Background(), 9, &models.ResourceType{Name: "x"})
	var nf *services.NotFoundError
	assert.ErrorAs(t, err, &nf)

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Delete(t *testing.T) {
	mockRepo := new(mockResourceTypeRepository)
	events := new(MockEventPublisher)
	service := services.NewResourceTypeService(mockRepo, services.Deps{Events: events})

	mockRepo.On("Delete", mock.Anything, 1).Return(nil).Once()
	events.On("PublishEvent", eventOfType("tipo-recurso.deleted")).Return(errors.New("broker down")).Once()
	assert.NoError(t, service.Delete(context.Background(), 1), "a failed publish does not fail the write")

	mockRepo.On("Delete", mock.Anything, 2).
		Return(fmt.Errorf("resource type with ID 2 not found for deletion: %w", repositories.ErrNotFound)).Once()
	err := service.Delete(context.Background(), 2)
	var nf *services.NotFoundError
	assert.ErrorAs(t, err, &nf)

	mockRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}
