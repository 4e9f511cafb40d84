package dto

import (
	"time"

	"solidarmap/internal/models"
)

// UserRequest is the body of user create and update calls.
type UserRequest struct {
	Name       string `json:"nome" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,max=100"`
	Password   string `json:"senha" validate:"required,max=256"`
	UserTypeID int    `json:"tipoUsuarioId"`
}

func (r UserRequest) ToModel() *models.User {
	return &models.User{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		UserTypeID: r.UserTypeID,
	}
}

// UserResponse never includes the password.
type UserResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"dataCriacao"`
	UserTypeID   int       `json:"tipoUsuarioId"`
	UserTypeName string    `json:"tipoUsuarioNome"`
}

func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		UserTypeID: u.UserTypeID,
	}
	if u.UserType != nil {
		resp.UserTypeName = u.UserType.Name
	}
	return resp
}

func NewUserResponses(items []models.User) []UserResponse {
	return mapAll(items, NewUserResponse)
}
