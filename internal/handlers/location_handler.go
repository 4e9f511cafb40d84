package handlers

import (
	"solidarmap/internal/dto"
	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LocationHandler handles HTTP requests for aid request locations.
type LocationHandler struct {
	service  *services.LocationService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service *services.LocationService, log *logrus.Logger) *LocationHandler {
	return &LocationHandler{
		service:  service,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes mounts the handler under router.
func (h *LocationHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/localizacoes")
	routes.Get("/", h.HandleGetLocations)
	routes.Get("/ajudaId/:ajudaId", h.HandleGetLocationsByAidRequest)
	routes.Get("/:id", h.HandleGetLocationByID)
	routes.Post("/", h.HandleCreateLocation)
	routes.Put("/:id", h.HandleUpdateLocation)
	routes.Delete("/:id", h.HandleDeleteLocation)
}

// HandleGetLocations lists every location.
func (h *LocationHandler) HandleGetLocations(c *fiber.Ctx) error {
	items, err := h.service.GetAllLocations(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewLocationResponses(items))
}

// HandleGetLocationsByAidRequest lists the locations of one aid request.
func (h *LocationHandler) HandleGetLocationsByAidRequest(c *fiber.Ctx) error {
	aidRequestID, err := parseID(c, "ajudaId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	items, err := h.service.GetLocationsByAidRequest(c.UserContext(), aidRequestID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewLocationResponses(items))
}

// HandleGetLocationByID returns a single location.
func (h *LocationHandler) HandleGetLocationByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.GetLocationByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewLocationResponse(item))
}

// HandleCreateLocation stores a new location and answers 201 with its Location header.
func (h *LocationHandler) HandleCreateLocation(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.CreateLocation(c.UserContext(), req.ToModel())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return created(c, item.ID, dto.NewLocationResponse(item))
}

// HandleUpdateLocation replaces a location.
func (h *LocationHandler) HandleUpdateLocation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req dto.LocationRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.UpdateLocation(c.UserContext(), id, req.ToModel()); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteLocation removes a location.
func (h *LocationHandler) HandleDeleteLocation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.DeleteLocation(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
