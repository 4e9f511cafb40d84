package handlers

import (
	"solidarmap/internal/dto"
	"solidarmap/internal/models"
	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// catalogHandler serves one lookup table. M is the model, Req and Resp its wire shapes.
type catalogHandler[M any, Req interface{ ToModel() *M }, Resp any] struct {
	service  *services.CatalogService[M]
	path     string
	idOf     func(*M) int
	toResp   func(*M) Resp
	validate *validator.Validate
	log      *logrus.Logger
}

// CatalogRoutes registers the routes of a lookup table.
type CatalogRoutes interface {
	RegisterRoutes(router fiber.Router)
}

// NewUserTypeHandler serves /tipos-usuario.
func NewUserTypeHandler(service *services.CatalogService[models.UserType], log *logrus.Logger) CatalogRoutes {
	return &catalogHandler[models.UserType, dto.UserTypeRequest, dto.UserTypeResponse]{
		service:  service,
		path:     "/tipos-usuario",
		idOf:     func(t *models.UserType) int { return t.ID },
		toResp:   dto.NewUserTypeResponse,
		validate: newValidator(),
		log:      log,
	}
}

// NewResourceTypeHandler serves /tipos-recurso.
func NewResourceTypeHandler(service *services.CatalogService[models.ResourceType], log *logrus.Logger) CatalogRoutes {
	return &catalogHandler[models.ResourceType, dto.ResourceTypeRequest, dto.ResourceTypeResponse]{
		service:  service,
		path:     "/tipos-recurso",
		idOf:     func(t *models.ResourceType) int { return t.ID },
		toResp:   dto.NewResourceTypeResponse,
		validate: newValidator(),
		log:      log,
	}
}

// NewZoneTypeHandler serves /tipos-zona.
func NewZoneTypeHandler(service *services.CatalogService[models.ZoneType], log *logrus.Logger) CatalogRoutes {
	return &catalogHandler[models.ZoneType, dto.ZoneTypeRequest, dto.ZoneTypeResponse]{
		service:  service,
		path:     "/tipos-zona",
		idOf:     func(t *models.ZoneType) int { return t.ID },
		toResp:   dto.NewZoneTypeResponse,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes mounts the handler under router.
func (h *catalogHandler[M, Req, Resp]) RegisterRoutes(router fiber.Router) {
	routes := router.Group(h.path)
	routes.Get("/", h.handleList)
	routes.Get("/:id", h.handleGet)
	routes.Post("/", h.handleCreate)
	routes.Put("/:id", h.handleUpdate)
	routes.Delete("/:id", h.handleDelete)
}

func (h *catalogHandler[M, Req, Resp]) handleList(c *fiber.Ctx) error {
	items, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]Resp, 0, len(items))
	for i := range items {
		out = append(out, h.toResp(&items[i]))
	}
	return c.JSON(out)
}

func (h *catalogHandler[M, Req, Resp]) handleGet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(h.toResp(item))
}

func (h *catalogHandler[M, Req, Resp]) handleCreate(c *fiber.Ctx) error {
	var req Req
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.Create(c.UserContext(), req.ToModel())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return created(c, h.idOf(item), h.toResp(item))
}

func (h *catalogHandler[M, Req, Resp]) handleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req Req
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.Update(c.UserContext(), id, req.ToModel()); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *catalogHandler[M, Req, Resp]) handleDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
