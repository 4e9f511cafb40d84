package services

import (
	"context"
	"errors"
	"fmt"

	"solidarmap/internal/models"
	"solidarmap/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	base
	repo          repositories.UserRepository
	userTypes     repositories.UserTypeRepository
	hashPasswords bool
}

// NewUserService creates a new UserService. With hashPasswords set, passwords are
// stored as bcrypt hashes instead of the submitted text.
func NewUserService(repo repositories.UserRepository, userTypes repositories.UserTypeRepository, hashPasswords bool, deps Deps) *UserService {
	return &UserService{
		base:          newBase(deps, "user", "usuario"),
		repo:          repo,
		userTypes:     userTypes,
		hashPasswords: hashPasswords,
	}
}

// GetAllUsers retrieves all users with their type resolved.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.readFailure(0, err)
	}
	return users, nil
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readFailure(id, err)
	}
	return user, nil
}

// GetUserByEmail retrieves the user registered with email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Entity: s.entity, Field: "email", Value: email}
		}
		return nil, s.readFailure(0, err)
	}
	return user, nil
}

// CreateUser registers a new user. An unknown user type is reported as not found.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.checkUserType(ctx, user.UserTypeID); err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	password, err := s.hashPassword(user.Password)
	if err != nil {
		return nil, s.fail(actionCreated, 0, err)
	}

	user.ID = 0
	user.Password = password
	user.CreatedAt = s.now()
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, s.fail(actionCreated, 0, &StorageError{Op: "create", Err: err})
	}

	s.committed(actionCreated, user.ID)
	return reload[models.User](ctx, s.base, s.repo, user.ID, user), nil
}

// UpdateUser replaces the name, email, password and type of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int, user *models.User) error {
	if err := requireExists(ctx, s.repo, s.entity, id); err != nil {
		return s.fail(actionUpdated, id, err)
	}
	if err := s.checkUserType(ctx, user.UserTypeID); err != nil {
		return s.fail(actionUpdated, id, err)
	}

	password, err := s.hashPassword(user.Password)
	if err != nil {
		return s.fail(actionUpdated, id, err)
	}

	user.ID = id
	user.Password = password
	if err := s.repo.Update(ctx, user); err != nil {
		return s.fail(actionUpdated, id, s.translate("update", id, err))
	}
	s.committed(actionUpdated, id)
	return nil
}

// DeleteUser removes a user together with its aid requests, ratings and messages.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(actionDeleted, id, s.translate("delete", id, err))
	}
	s.committed(actionDeleted, id)
	return nil
}

func (s *UserService) checkUserType(ctx context.Context, userTypeID int) error {
	missing, err := checkReferences(ctx, ref(s.userTypes, "user type", "tipoUsuarioId", userTypeID))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return notFound("user type", userTypeID)
	}
	return nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	if !s.hashPasswords {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
