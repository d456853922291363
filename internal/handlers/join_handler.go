package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/socialevents/social-events-backend/internal/models"
	"github.com/socialevents/social-events-backend/internal/services"
)

type JoinStore interface {
	Join(eventID uuid.UUID, userEmail string) (*models.Join, error)
	ListJoined(userEmail string) ([]dto.JoinedEvent, error)
}

type JoinHandler struct {
	joins JoinStore
}

func NewJoinHandler(joins JoinStore) *JoinHandler {
	return &JoinHandler{joins: joins}
}

// Join handles POST /events/:id/join
func (h *JoinHandler) Join(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	join, err := h.joins.Join(eventID, principal.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		case errors.Is(err, services.ErrAlreadyJoined):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Already joined this event",
			})
		}
		slog.Error("join failed", "error", err, "event_id", eventID.String(), "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to join event",
		})
	}
	return c.JSON(dto.JoinResponse{InsertedID: join.ID})
}

// Joined handles GET /users/me/joined
func (h *JoinHandler) Joined(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	joined, err := h.joins.ListJoined(principal.Email)
	if err != nil {
		slog.Error("joined-events listing failed", "error", err, "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list joined events",
		})
	}
	return c.JSON(joined)
}
