package routes

import (
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/handlers"
	"github.com/coachdesk/coachdesk-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	athleteHandler *handlers.AthleteHandler,
	assessmentHandler *handlers.AssessmentHandler,
	movementHandler *handlers.MovementHandler,
	injuryHandler *handlers.InjuryHandler,
	noteHandler *handlers.NoteHandler,
	dashboardHandler *handlers.DashboardHandler,
	fileHandler *handlers.FileHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth gets its own stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/request-reset", authHandler.RequestReset)
	auth.Post("/reset", authHandler.ConfirmReset)
	auth.Get("/me", middleware.SessionRequired(cfg), authHandler.Me)

	// Athletes
	api.Get("/athletes", athleteHandler.List)
	api.Post("/athletes", athleteHandler.Create)
	api.Get("/athletes/:id", athleteHandler.Get)
	api.Patch("/athletes/:id", athleteHandler.Update)
	api.Delete("/athletes/:id", athleteHandler.Delete)
	api.Get("/athletes/:id/notes", athleteHandler.Notes)

	// Assessment history (create + list, immutable)
	api.Get("/assessments/athlete/:id", assessmentHandler.ListByAthlete)
	api.Post("/assessments", assessmentHandler.Create)

	// Movement screenings
	api.Get("/movement-assessments/athlete/:id", movementHandler.ListByAthlete)
	api.Post("/movement-assessments", movementHandler.Create)

	// Injuries
	api.Get("/injuries/:athleteId", injuryHandler.ListByAthlete)
	api.Post("/injuries", injuryHandler.Create)

	// Notes
	api.Post("/notes", noteHandler.Create)
	api.Patch("/notes/:id/pin", noteHandler.SetPinned)
	api.Delete("/notes/:id", noteHandler.Delete)

	// Dashboard
	api.Get("/dashboard/overview", dashboardHandler.Overview)

	// Uploads (the /files/photo alias predates /upload and is kept for
	// older frontend builds)
	api.Post("/upload", fileHandler.Upload)
	api.Post("/files/photo", fileHandler.Upload)
}
