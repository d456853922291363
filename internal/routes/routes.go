package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/socialevents/social-events-backend/internal/handlers"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/socialevents/social-events-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	verifier identity.TokenVerifier,
	adminChecker middleware.AdminChecker,
	healthHandler *handlers.HealthHandler,
	eventHandler *handlers.EventHandler,
	joinHandler *handlers.JoinHandler,
	userHandler *handlers.UserHandler,
) {
	// 60 req/min per IP across the API
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	authenticated := middleware.Authenticated(verifier)
	adminOnly := middleware.AdminRequired(adminChecker)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Events. "/events/count" must precede "/events/:id".
	app.Get("/events", eventHandler.List)
	app.Get("/events/count", eventHandler.Count)
	app.Get("/events/:id", eventHandler.Get)
	app.Post("/events", authenticated, eventHandler.Create)
	app.Put("/events/:id", authenticated, eventHandler.Update)
	app.Delete("/events/:id", authenticated, eventHandler.Delete)
	app.Post("/events/:id/join", authenticated, joinHandler.Join)

	// Users — literal "me" and "email" segments before the ":email" params.
	app.Post("/users", authenticated, userHandler.Upsert)
	app.Get("/users/me", authenticated, userHandler.Me)
	app.Put("/users/me", authenticated, userHandler.UpdateMe)
	app.Get("/users/me/events", authenticated, eventHandler.MyEvents)
	app.Get("/users/me/joined", authenticated, joinHandler.Joined)
	app.Get("/users/email/:email", userHandler.PublicProfile)

	// Admin
	app.Get("/users", authenticated, adminOnly, userHandler.List)
	app.Put("/users/:email/role", authenticated, adminOnly, userHandler.ChangeRole)
	app.Patch("/users/:email/block", authenticated, adminOnly, userHandler.ToggleBlock)
	app.Delete("/users/:email", authenticated, adminOnly, userHandler.Delete)
}
