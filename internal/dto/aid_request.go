package dto

import (
	"time"

	"solidarmap/internal/models"
)

// AidRequestRequest is the body of aid request create and update calls.
// Status is any single character.
type AidRequestRequest struct {
	UserID         int    `json:"usuarioId"`
	ResourceTypeID int    `json:"tipoRecursoId"`
	Description    string `json:"descricao" validate:"required,max=256"`
	Status         string `json:"status" validate:"required,len=1"`
}

func (r AidRequestRequest) ToModel() *models.AidRequest {
	return &models.AidRequest{
		UserID:         r.UserID,
		ResourceTypeID: r.ResourceTypeID,
		Description:    r.Description,
		Status:         r.Status,
	}
}

type AidRequestResponse struct {
	ID             int       `json:"id"`
	UserID         int       `json:"usuarioId"`
	ResourceTypeID int       `json:"tipoRecursoId"`
	UserName       string    `json:"nomeUsuario"`
	ResourceName   string    `json:"recurso"`
	Description    string    `json:"descricao"`
	Status         string    `json:"status"`
	PublishedAt    time.Time `json:"dataPublicacao"`
}

func NewAidRequestResponse(a *models.AidRequest) AidRequestResponse {
	resp := AidRequestResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		ResourceTypeID: a.ResourceTypeID,
		Description:    a.Description,
		Status:         a.Status,
		PublishedAt:    a.PublishedAt,
	}
	if a.User != nil {
		resp.UserName = a.User.Name
	}
	if a.ResourceType != nil {
		resp.ResourceName = a.ResourceType.Name
	}
	return resp
}

func NewAidRequestResponses(items []models.AidRequest) []AidRequestResponse {
	return mapAll(items, NewAidRequestResponse)
}
