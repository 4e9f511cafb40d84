package dto

import (
	"encoding/json"
	"testing"
	"time"

	"solidarmap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAidRequestResponseFlattensRelations(t *testing.T) {
	published := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	resp := NewAidRequestResponse(&models.AidRequest{
		ID: 1, UserID: 2, ResourceTypeID: 3, Description: "Preciso de água", Status: "A", PublishedAt: published,
		User:         &models.User{ID: 2, Name: "Ana"},
		ResourceType: &models.ResourceType{ID: 3, Name: "Água"},
	})

	assert.Equal(t, "Ana", resp.UserName)
	assert.Equal(t, "Água", resp.ResourceName)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "usuarioId": 2, "tipoRecursoId": 3, "nomeUsuario": "Ana", "recurso": "Água",
		"descricao": "Preciso de água", "status": "A", "dataPublicacao": "2024-05-10T14:30:00Z"
	}`, string(body))
}

func TestResponsesTolerateMissingRelations(t *testing.T) {
	assert.Empty(t, NewAidRequestResponse(&models.AidRequest{ID: 1}).UserName)
	assert.Empty(t, NewUserResponse(&models.User{ID: 1}).UserTypeName)
	assert.Empty(t, NewRatingResponse(&models.Rating{ID: 1}).UserName)
	assert.Empty(t, NewLocationResponse(&models.Location{ID: 1}).ZoneName)
	assert.Empty(t, NewMessageResponse(&models.Message{ID: 1}).UserName)
}

func TestUserResponseOmitsPassword(t *testing.T) {
	body, err := json.Marshal(NewUserResponse(&models.User{
		ID: 1, Name: "Ana", Email: "ana@x.com", Password: "segredo", UserTypeID: 1,
		UserType: &models.UserType{ID: 1, Name: "Voluntário"},
	}))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "segredo")
	assert.Contains(t, string(body), `"tipoUsuarioNome":"Voluntário"`)
}

func TestRequestsDropServerFields(t *testing.T) {
	var req AidRequestRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 50, "usuarioId": 1, "tipoRecursoId": 2, "descricao": "x", "status": "A",
		"dataPublicacao": "2001-01-01T00:00:00Z", "nomeUsuario": "Forged"
	}`), &req))

	model := req.ToModel()
	assert.Zero(t, model.ID)
	assert.True(t, model.PublishedAt.IsZero())
	assert.Nil(t, model.User)
	assert.Equal(t, 1, model.UserID)
	assert.Equal(t, 2, model.ResourceTypeID)
}

func TestListMappingNeverNil(t *testing.T) {
	assert.NotNil(t, NewMessageResponses(nil))
	body, err := json.Marshal(NewLocationResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	items := NewUserTypeResponses([]models.UserType{{ID: 1, Name: "Voluntário"}, {ID: 2, Name: "Solicitante"}})
	assert.Equal(t, []UserTypeResponse{{ID: 1, Name: "Voluntário"}, {ID: 2, Name: "Solicitante"}}, items)
}

func TestLocationRequestRoundsCoordinates(t *testing.T) {
	loc := LocationRequest{AidRequestID: 1, ZoneTypeID: 2, Latitude: -23.123456789123, Longitude: 46.987654321987}.ToModel()

	assert.InDelta(t, -23.12345679, loc.Latitude, 1e-12)
	assert.InDelta(t, 46.98765432, loc.Longitude, 1e-12)
}
