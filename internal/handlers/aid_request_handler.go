package handlers

import (
	"solidarmap/internal/dto"
	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AidRequestHandler handles HTTP requests for aid requests.
type AidRequestHandler struct {
	service  *services.AidRequestService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewAidRequestHandler creates a new AidRequestHandler.
func NewAidRequestHandler(service *services.AidRequestService, log *logrus.Logger) *AidRequestHandler {
	return &AidRequestHandler{
		service:  service,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes registers the aid request routes with the Fiber router.
func (h *AidRequestHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/ajudas")
	routes.Get("/", h.HandleGetAidRequests)
	routes.Get("/usuario/:usuarioId", h.HandleGetAidRequestsByUser)
	routes.Get("/:id", h.HandleGetAidRequestByID)
	routes.Post("/", h.HandleCreateAidRequest)
	routes.Put("/:id", h.HandleUpdateAidRequest)
	routes.Delete("/:id", h.HandleDeleteAidRequest)
}

// HandleGetAidRequests lists every aid request.
func (h *AidRequestHandler) HandleGetAidRequests(c *fiber.Ctx) error {
	items, err := h.service.GetAllAidRequests(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewAidRequestResponses(items))
}

// HandleGetAidRequestsByUser lists the requests of one user; 404 when the user does not exist.
func (h *AidRequestHandler) HandleGetAidRequestsByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	items, err := h.service.GetAidRequestsByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewAidRequestResponses(items))
}

// HandleGetAidRequestByID returns a single aid request.
func (h *AidRequestHandler) HandleGetAidRequestByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.GetAidRequestByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewAidRequestResponse(item))
}

// HandleCreateAidRequest stores a new aid request and answers 201 with its Location.
func (h *AidRequestHandler) HandleCreateAidRequest(c *fiber.Ctx) error {
	var req dto.AidRequestRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.CreateAidRequest(c.UserContext(), req.ToModel())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return created(c, item.ID, dto.NewAidRequestResponse(item))
}

// HandleUpdateAidRequest replaces an aid request.
func (h *AidRequestHandler) HandleUpdateAidRequest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req dto.AidRequestRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.UpdateAidRequest(c.UserContext(), id, req.ToModel()); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteAidRequest removes an aid request and everything attached to it.
func (h *AidRequestHandler) HandleDeleteAidRequest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.DeleteAidRequest(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
