package routes

import (
	"time"

	"github.com/devshowcase/showcase-backend/internal/config"
	"github.com/devshowcase/showcase-backend/internal/handlers"
	"github.com/devshowcase/showcase-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	commentHandler *handlers.CommentHandler,
	feedbackHandler *handlers.FeedbackHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/stats", statsHandler.Get)

	// Auth — public, with a stricter rate limit: 10 req/min per IP.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)

	// Projects. Public reads carry optional auth so the feed can attach
	// per-viewer like state; literal paths are registered before /:id.
	projects := api.Group("/projects")
	projects.Get("/", middleware.OptionalAuth(cfg), projectHandler.List)
	projects.Get("/search", middleware.OptionalAuth(cfg), projectHandler.Search)
	projects.Get("/my/list", middleware.JWTProtected(cfg), projectHandler.MyProjects)
	projects.Get("/:id", middleware.OptionalAuth(cfg), projectHandler.GetByID)
	projects.Get("/:id/comments", commentHandler.List)

	projects.Post("/", middleware.JWTProtected(cfg), projectHandler.Create)
	projects.Put("/:id", middleware.JWTProtected(cfg), projectHandler.Update)
	projects.Delete("/:id", middleware.JWTProtected(cfg), projectHandler.Delete)
	projects.Post("/:id/like", middleware.JWTProtected(cfg), projectHandler.ToggleLike)
	projects.Post("/:id/comments", middleware.JWTProtected(cfg), commentHandler.Create)

	api.Put("/comments/:id", middleware.JWTProtected(cfg), commentHandler.Update)
	api.Delete("/comments/:id", middleware.JWTProtected(cfg), commentHandler.Delete)

	feedback := api.Group("/feedback")
	feedback.Get("/", feedbackHandler.List)
	feedback.Get("/my", middleware.JWTProtected(cfg), feedbackHandler.Mine)
	feedback.Post("/", middleware.JWTProtected(cfg), feedbackHandler.Create)
	feedback.Put("/:id", middleware.JWTProtected(cfg), feedbackHandler.Update)
	feedback.Delete("/:id", middleware.JWTProtected(cfg), feedbackHandler.Delete)
}
