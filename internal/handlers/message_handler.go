package handlers

import (
	"solidarmap/internal/dto"
	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MessageHandler handles HTTP requests for messages.
type MessageHandler struct {
	service  *services.MessageService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService, log *logrus.Logger) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes mounts the handler under router.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/mensagens")
	routes.Get("/", h.HandleGetMessages)
	routes.Get("/ajuda/:ajudaId", h.HandleGetMessagesByAidRequest)
	routes.Get("/:id", h.HandleGetMessageByID)
	routes.Post("/", h.HandleCreateMessage)
	routes.Put("/:id", h.HandleUpdateMessage)
	routes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleGetMessages lists every message.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	items, err := h.service.GetAllMessages(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewMessageResponses(items))
}

// HandleGetMessagesByAidRequest lists the messages of one aid request.
func (h *MessageHandler) HandleGetMessagesByAidRequest(c *fiber.Ctx) error {
	aidRequestID, err := parseID(c, "ajudaId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	items, err := h.service.GetMessagesByAidRequest(c.UserContext(), aidRequestID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewMessageResponses(items))
}

// HandleGetMessageByID returns a single message.
func (h *MessageHandler) HandleGetMessageByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.GetMessageByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewMessageResponse(item))
}

// HandleCreateMessage stores a new message and answers 201 with its Location.
func (h *MessageHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	item, err := h.service.CreateMessage(c.UserContext(), req.ToModel())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return created(c, item.ID, dto.NewMessageResponse(item))
}

// HandleUpdateMessage replaces a message.
func (h *MessageHandler) HandleUpdateMessage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req dto.MessageRequest
	if err := decodeBody(c, h.validate, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.UpdateMessage(c.UserContext(), id, req.ToModel()); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteMessage removes a message.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.service.DeleteMessage(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
