package handlers

import (
	"solidarmap/internal/dto"
	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RatingHandler handles HTTP requests for ratings.
type RatingHandler struct {
	service  *services.RatingService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service *services.RatingService, log *logrus.Logger) *RatingHandler {
	return &RatingHandler{
		service:  service,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes mounts the handler under router.
func (h *RatingHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/avaliacoes")
	routes.Get("/", h.HandleGetRatings)
	routes.Get("/ajuda/:ajudaId", h.HandleGetRatingsByAidRequest)
	routes.Get("/:id", h.HandleGetRatingByID)
	routes.Post("/", h.HandleCreateRating)
	routes.Put("/:id", h.HandleUpdateRating)
	routes.Delete("/:id", h.HandleDeleteRating)
}

// HandleGetRatings lists every rating.
func (h *RatingHandler) HandleGetRatings(c *fiber.Ctx) error {
	items, err := h.service.GetAllRatings(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewRatingResponses(items))
}

// HandleGetRatingsByAidRequest lists the ratings of one aid request.
func (h *RatingHandler) HandleGetRatingsByAidRequest(c *fiber.Ctx) error {
	aidRequestID, err := parseID(c, "ajudaId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	items, err := h.service.GetRatingsByAidRequest(c.UserContext(), aidRequestID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewRatingResponses(items))
}

// HandleGetRatingByID returns a single rating.
func (h *RatingHandler) HandleGetRatingByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.GetRatingByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewRatingResponse(item))
}

// HandleCreateRating stores a new rating and answers 201 with its Location.
func (h *RatingHandler) HandleCreateRating(c *fiber.Ctx) error {
	var req dto.RatingRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.CreateRating(c.UserContext(), req.ToModel())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return created(c, item.ID, dto.NewRatingResponse(item))
}

// HandleUpdateRating replaces a rating.
func (h *RatingHandler) HandleUpdateRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req dto.RatingRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.UpdateRating(c.UserContext(), id, req.ToModel()); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteRating removes a rating.
func (h *RatingHandler) HandleDeleteRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.DeleteRating(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
