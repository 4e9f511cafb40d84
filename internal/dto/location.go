package dto

import (
	"math"

	"solidarmap/internal/models"
)

// coordinateScale matches the decimal(12,8) storage columns.
const coordinateScale = 1e8

type LocationRequest struct {
	AidRequestID int     `json:"ajudaId"`
	ZoneTypeID   int     `json:"zonaId"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func (r LocationRequest) ToModel() *models.Location {
	return &models.Location{
		AidRequestID: r.AidRequestID,
		ZoneTypeID:   r.ZoneTypeID,
		Latitude:     roundCoordinate(r.Latitude),
		Longitude:    roundCoordinate(r.Longitude),
	}
}

type LocationResponse struct {
	ID           int     `json:"id"`
	AidRequestID int     `json:"ajudaId"`
	ZoneTypeID   int     `json:"zonaId"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ZoneName     string  `json:"zona"`
}

func NewLocationResponse(l *models.Location) LocationResponse {
	resp := LocationResponse{
		ID:           l.ID,
		AidRequestID: l.AidRequestID,
		ZoneTypeID:   l.ZoneTypeID,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
	}
	if l.ZoneType != nil {
		resp.ZoneName = l.ZoneType.Name
	}
	return resp
}

func NewLocationResponses(items []models.Location) []LocationResponse {
	return mapAll(items, NewLocationResponse)
}

// roundCoordinate keeps the scale the database keeps, so every driver reads back
// the value that was written.
func roundCoordinate(v float64) float64 {
	return math.Round(v*coordinateScale) / coordinateScale
}
