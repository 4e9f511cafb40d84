package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"solidarmap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bodyError is returned by decodeBody when the payload cannot be used.
type bodyError struct {
	message string
	cause   string
	fields  map[string]string
}

func (e *bodyError) Error() string {
	return e.message
}

func decodeBody(c *fiber.Ctx, v *validator.Validate, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &bodyError{message: "Invalid request body", cause: err.Error()}
	}
	if err := v.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return &bodyError{message: "Invalid request body", cause: err.Error()}
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &bodyError{message: "Validation failed", fields: fields}
	}
	return nil
}

// parseID reads an integer path parameter.
func parseID(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &bodyError{message: fmt.Sprintf("Invalid %s '%s'", name, raw)}
	}
	return id, nil
}

// respondError writes the status and JSON body matching err.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	var (
		body     *bodyError
		notFound *services.NotFoundError
		invalid  *services.InvalidReferenceError
		storage  *services.StorageError
	)
	switch {
	case errors.As(err, &body):
		resp := fiber.Map{"message": body.message}
		if body.cause != "" {
			resp["error"] = body.cause
		}
		if body.fields != nil {
			resp["errors"] = body.fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":    invalid.Error(),
			"references": invalid.References,
		})
	case errors.Is(err, services.ErrPasswordTooLong):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &storage):
		log.WithError(err).WithFields(logrus.Fields{"method": c.Method(), "path": c.Path()}).Error("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Storage failure",
			"error":   storage.Error(),
		})
	default:
		log.WithError(err).WithFields(logrus.Fields{"method": c.Method(), "path": c.Path()}).Error("unexpected error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

// created answers 201 with a Location header pointing at the new resource.
func created(c *fiber.Ctx, id int, body any) error {
	base := strings.TrimSuffix(c.Path(), "/")
	c.Location(base + "/" + strconv.Itoa(id))
	return c.Status(fiber.StatusCreated).JSON(body)
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes, as JSON.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("request failed")
		}
		return c.Status(code).JSON(fiber.Map{"message": err.Error()})
	}
}
