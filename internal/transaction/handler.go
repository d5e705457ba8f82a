package transaction

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rishab4242/Expense-Tracker-App/internal/auth"
)

type Handler struct {
	Service *Service
	Logger  *logrus.Logger
}

func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{Service: service, Logger: logger}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	t, err := h.Service.Create(userContext(c), ownerID, req)
	if err != nil {
		return h.mapError(err, "transaction.create")
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *Handler) List(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Service.List(userContext(c), ownerID)
	if err != nil {
		return h.mapError(err, "transaction.list")
	}

	return c.JSON(items)
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	s, err := h.Service.Summary(userContext(c), ownerID)
	if err != nil {
		return h.mapError(err, "transaction.summary")
	}

	return c.JSON(s)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	t, err := h.Service.Update(userContext(c), ownerID, id, req)
	if err != nil {
		return h.mapError(err, "transaction.update")
	}

	return c.JSON(t)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	}

	if err := h.Service.Delete(userContext(c), ownerID, id); err != nil {
		return h.mapError(err, "transaction.delete")
	}

	return c.JSON(fiber.Map{"message": "transaction deleted"})
}

// mapError translates service errors to HTTP statuses. Store failures
// are logged and surfaced as a generic 500.
func (h *Handler) mapError(err error, op string) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}

	if h.Logger != nil {
		h.Logger.WithError(err).Error(op)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
