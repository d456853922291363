package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/socialevents/social-events-backend/internal/models"
	"github.com/socialevents/social-events-backend/internal/services"
)

type UserStore interface {
	UpsertFromPrincipal(p *identity.Principal) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetPublicByEmail(email string) (*dto.PublicUser, error)
	UpdateProfile(email string, fields map[string]interface{}) (*models.User, error)
	ChangeRole(email, role string) (*models.User, error)
	ToggleBlock(email string) (*models.User, error)
	Delete(email string) error
	ListAll() ([]models.User, error)
}

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Upsert handles POST /users — called by clients on every login.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.users.UpsertFromPrincipal(principal)
	if err != nil {
		slog.Error("user upsert failed", "error", err, "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save user",
		})
	}
	return c.JSON(user)
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.users.GetByEmail(principal.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("profile fetch failed", "error", err, "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}
	return c.JSON(user)
}

// UpdateMe handles PUT /users/me. Protected fields in the body are dropped
// silently, not rejected.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	principal, err := identity.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.users.UpdateProfile(principal.Email, fields)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("profile update failed", "error", err, "user", principal.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}
	return c.JSON(user)
}

// PublicProfile handles GET /users/email/:email — no auth, restricted fields.
func (h *UserHandler) PublicProfile(c *fiber.Ctx) error {
	email := c.Params("email")

	user, err := h.users.GetPublicByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("public profile fetch failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}
	return c.JSON(user)
}

// ChangeRole handles PUT /users/:email/role (admin).
func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.users.ChangeRole(c.Params("email"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("role change failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to change role",
		})
	}
	return c.JSON(user)
}

// ToggleBlock handles PATCH /users/:email/block (admin).
func (h *UserHandler) ToggleBlock(c *fiber.Ctx) error {
	user, err := h.users.ToggleBlock(c.Params("email"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("block toggle failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle block",
		})
	}
	return c.JSON(user)
}

// Delete handles DELETE /users/:email (admin).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Params("email")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("user delete failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// List handles GET /users (admin).
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListAll()
	if err != nil {
		slog.Error("user listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}
	return c.JSON(users)
}
