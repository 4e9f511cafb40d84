package dto

import (
	"time"

	"solidarmap/internal/models"
)

type MessageRequest struct {
	AidRequestID int    `json:"ajudaId"`
	UserID       int    `json:"usuarioId"`
	Content      string `json:"conteudo" validate:"required,max=500"`
}

func (r MessageRequest) ToModel() *models.Message {
	return &models.Message{
		AidRequestID: r.AidRequestID,
		UserID:       r.UserID,
		Content:      r.Content,
	}
}

type MessageResponse struct {
	ID           int       `json:"id"`
	AidRequestID int       `json:"ajudaId"`
	UserID       int       `json:"usuarioId"`
	Content      string    `json:"conteudo"`
	SentAt       time.Time `json:"dataEnvio"`
	UserName     string    `json:"nomeUsuario"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:           m.ID,
		AidRequestID: m.AidRequestID,
		UserID:       m.UserID,
		Content:      m.Content,
		SentAt:       m.SentAt,
	}
	if m.User != nil {
		resp.UserName = m.User.Name
	}
	return resp
}

func NewMessageResponses(items []models.Message) []MessageResponse {
	return mapAll(items, NewMessageResponse)
}
