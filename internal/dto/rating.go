package dto

import (
	"time"

	"solidarmap/internal/models"
)

// RatingRequest is the body of rating create and update calls. The score is not range checked.
type RatingRequest struct {
	AidRequestID int    `json:"ajudaId"`
	UserID       int    `json:"usuarioId"`
	Score        int    `json:"nota"`
	Comment      string `json:"comentario" validate:"max=150"`
}

func (r RatingRequest) ToModel() *models.Rating {
	return &models.Rating{
		AidRequestID: r.AidRequestID,
		UserID:       r.UserID,
		Score:        r.Score,
		Comment:      r.Comment,
	}
}

type RatingResponse struct {
	ID           int       `json:"id"`
	AidRequestID int       `json:"ajudaId"`
	UserID       int       `json:"usuarioId"`
	Score        int       `json:"nota"`
	Comment      string    `json:"comentario"`
	RatedAt      time.Time `json:"dataAvaliacao"`
	UserName     string    `json:"nomeUsuario"`
}

func NewRatingResponse(r *models.Rating) RatingResponse {
	resp := RatingResponse{
		ID:           r.ID,
		AidRequestID: r.AidRequestID,
		UserID:       r.UserID,
		Score:        r.Score,
		Comment:      r.Comment,
		RatedAt:      r.RatedAt,
	}
	if r.User != nil {
		resp.UserName = r.User.Name
	}
	return resp
}

func NewRatingResponses(items []models.Rating) []RatingResponse {
	return mapAll(items, NewRatingResponse)
}
