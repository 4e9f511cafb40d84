package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"
	"solidarmap/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserTypeRepository struct {
	MockRepository[models.UserType]
}

var fixedNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestUserService_CreateUser(t *testing.T) {
	users := new(MockUserRepository)
	userTypes := new(mockUserTypeRepository)
	service := services.NewUserService(users, userTypes, false, services.Deps{Now: fixedClock})

	userTypes.On("Exists", mock.Anything, 1).Return(true, nil).Once()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 0 && u.Password == "x" && u.CreatedAt.Equal(fixedNow)
	})).Run(func(args mock.Arguments) { args.Get(1).(*models.User).ID = 7 }).Return(nil).Once()

	stored := &models.User{ID: 7, UserTypeID: 1, Name: "Ana", Email: "ana@x.com", Password: "x", CreatedAt: fixedNow,
		UserType: &models.UserType{ID: 1, Name: "Voluntário"}}
	users.On("GetByID", mock.Anything, 7).Return(stored, nil).Once()

	created, err := service.CreateUser(context.Background(), &models.User{
		ID: 99, UserTypeID: 1, Name: "Ana", Email: "ana@x.com", Password: "x",
		CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, stored, created)
	assert.Equal(t, "Voluntário", created.UserType.Name)
	users.AssertExpectations(t)
	userTypes.AssertExpectations(t)
}

func TestUserService_CreateUserUnknownType(t *testing.T) {
	users := new(MockUserRepository)
	userTypes := new(mockUserTypeRepository)
	service := services.NewUserService(users, userTypes, false, services.Deps{})

	userTypes.On("Exists", mock.Anything, 5).Return(false, nil).Once()

	created, err := service.CreateUser(context.Background(), &models.User{UserTypeID: 5, Name: "Ana"})

	assert.Nil(t, created)
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user type with ID 5 not found", err.Error())
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUserHashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	userTypes := new(mockUserTypeRepository)
	service := services.NewUserService(users, userTypes, true, services.Deps{})

	var saved string
	userTypes.On("Exists", mock.Anything, 1).Return(true, nil).Once()
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*models.User)
			u.ID = 1
			saved = u.Password
		}).Return(nil).Once()
	users.On("GetByID", mock.Anything, 1).Return(nil, errors.New("gone")).Once()

	created, err := service.CreateUser(context.Background(), &models.User{UserTypeID: 1, Password: "segredo"})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID, "falls back to the written row when the reload fails")
	assert.NotEqual(t, "segredo", saved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved), []byte("segredo")))
}

func TestUserService_CreateUserPasswordTooLong(t *testing.T) {
	users := new(MockUserRepository)
	userTypes := new(mockUserTypeRepository)
	service := services.NewUserService(users, userTypes, true, services.Deps{})

	userTypes.On("Exists", mock.Anything, 1).Return(true, nil).Once()

	_, err := service.CreateUser(context.Background(), &models.User{UserTypeID: 1, Password: strings.Repeat("a", 100)})

	assert.ErrorIs(t, err, services.ErrPasswordTooLong)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUserByEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := services.NewUserService(users, new(mockUserTypeRepository), false, services.Deps{})

	expected := &models.User{ID: 1, Email: "ana@x.com"}
	users.On("GetByEmail", mock.Anything, "ana@x.com").Return(expected, nil).Once()
	user, err := service.GetUserByEmail(context.Background(), "ana@x.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, user)

	users.On("GetByEmail", mock.Anything, "nobody@x.com").
		Return(nil, fmt.Errorf("user with email nobody@x.com not found: %w", repositories.ErrNotFound)).Once()
	_, err = service.GetUserByEmail(context.Background(), "nobody@x.com")
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user with email nobody@x.com not found", err.Error())

	users.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	users := new(MockUserRepository)
	userTypes := new(mockUserTypeRepository)
	service := services.NewUserService(users, userTypes, false, services.Deps{})

	users.On("Exists", mock.Anything, 3).Return(true, nil).Once()
	userTypes.On("Exists", mock.Anything, 2).Return(true, nil).Once()
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 3 && u.Name == "Ana Maria" && u.UserTypeID == 2
	})).Return(nil).Once()

	err := service.UpdateUser(context.Background(), 3, &models.User{Name: "Ana Maria", UserTypeID: 2})
	assert.NoError(t, err)

	users.On("Exists", mock.Anything, 4).Return(false, nil).Once()
	err = service.UpdateUser(context.Background(), 4, &models.User{UserTypeID: 2})
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user with ID 4 not found", err.Error())

	users.AssertExpectations(t)
	userTypes.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	users := new(MockUserRepository)
	service := services.NewUserService(users, new(mockUserTypeRepository), false, services.Deps{})

	users.On("Delete", mock.Anything, 1).Return(nil).Once()
	assert.NoError(t, service.DeleteUser(context.Background(), 1))

	users.On("Delete", mock.Anything, 2).Return(errors.New("constraint failed")).Once()
	err := service.DeleteUser(context.Background(), 2)
	var se *services.StorageError
	assert.ErrorAs(t, err, &se)

	users.AssertExpectations(t)
}
