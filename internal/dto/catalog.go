package dto

import "solidarmap/internal/models"

type UserTypeRequest struct {
	Name string `json:"nomeTipo" validate:"required,max=50"`
}

func (r UserTypeRequest) ToModel() *models.UserType {
	return &models.UserType{Name: r.Name}
}

type UserTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"nomeTipo"`
}

func NewUserTypeResponse(t *models.UserType) UserTypeResponse {
	return UserTypeResponse{ID: t.ID, Name: t.Name}
}

func NewUserTypeResponses(items []models.UserType) []UserTypeResponse {
	return mapAll(items, NewUserTypeResponse)
}

type ResourceTypeRequest struct {
	Name string `json:"recurso" validate:"required,max=50"`
}

func (r ResourceTypeRequest) ToModel() *models.ResourceType {
	return &models.ResourceType{Name: r.Name}
}

type ResourceTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"recurso"`
}

func NewResourceTypeResponse(t *models.ResourceType) ResourceTypeResponse {
	return ResourceTypeResponse{ID: t.ID, Name: t.Name}
}

func NewResourceTypeResponses(items []models.ResourceType) []ResourceTypeResponse {
	return mapAll(items, NewResourceTypeResponse)
}

type ZoneTypeRequest struct {
	Name string `json:"zona" validate:"required,max=30"`
}

func (r ZoneTypeRequest) ToModel() *models.ZoneType {
	return &models.ZoneType{Name: r.Name}
}

type ZoneTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"zona"`
}

func NewZoneTypeResponse(t *models.ZoneType) ZoneTypeResponse {
	return ZoneTypeResponse{ID: t.ID, Name: t.Name}
}

func NewZoneTypeResponses(items []models.ZoneType) []ZoneTypeResponse {
	return mapAll(items, NewZoneTypeResponse)
}
