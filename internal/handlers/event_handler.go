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

// EventStore is the slice of EventService the handler needs; tests stub it.
type EventStore interface {
	List(q services.ListEventsQuery) (*dto.EventListResponse, error)
	Count() (int64, error)
	GetByID(id uuid.UUID) (*models.Event, error)
	Create(creatorEmail string, req *dto.CreateEventRequest) (*models.Event, error)
	Update(id uuid.UUID, callerEmail string, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(id uuid.UUID, callerEmail string) error
	ListByCreator(email string) ([]models.Event, error)
}

type EventHandler struct {
	events EventStore
}

func NewEventHandler(events EventStore) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /events
func (h *EventHandler) List(c *fiber.Ctx) error {
	q := services.ListEventsQuery{
		EventType: c.Query("type"),
		Search:    c.Query("search"),
		Location:  c.Query("location"),
		DateRange: c.Query("dateRange"),
		Sort:      c.Query("sort"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 0),
	}

	resp, err := h.events.List(q)
	if err != nil {
		slog.Error("event listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list events",
		})
	}
	return c.JSON(resp)
}

// Count handles GET /events/count
func (h *EventHandler) Count(c *fiber.Ctx) error {
	count, err := h.events.Count()
	if err != nil {
		slog.Error("event count failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to count events",
		})
	}
	return c.JSON(dto.EventCountResponse{Count: count})
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	event, err := h.events.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		slog.Error("event fetch failed", "error", err, "event_id", id.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch event",
		})
	}
	return c.JSON(event)
}

// Create handles POST /events
func (h *EventHandler) Create(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.events.Create(principal.Email, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("event create failed", "error", err, "creator", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create event",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.events.Update(id, principal.Email, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotOwner):
			// Unknown id and foreign owner answer alike so ids are not leaked.
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: you do not own this event",
			})
		}
		slog.Error("event update failed", "error", err, "event_id", id.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update event",
		})
	}
	return c.JSON(event)
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	if err := h.events.Delete(id, principal.Email); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: you do not own this event",
			})
		}
		slog.Error("event delete failed", "error", err, "event_id", id.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete event",
		})
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

// MyEvents handles GET /users/me/events
func (h *EventHandler) MyEvents(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	events, err := h.events.ListByCreator(principal.Email)
	if err != nil {
		slog.Error("created-events listing failed", "error", err, "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list events",
		})
	}
	return c.JSON(events)
}
