package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/api/http/handlers"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	DashboardUsers *handlers.DashboardUsersHandler
	Users          *handlers.UsersHandler
	ChefProfile    *handlers.ChefProfileHandler
	Upload         *handlers.UploadHandler
	Sessions       *auth.SessionMiddleware
	Metrics        *observability.Metrics
	Pages          *PageRouter
	Locales        []string
	Web            config.WebConfig
}

// RegisterRoutes wires HTTP routes. Page routes and static files come last so
// that API paths never reach them.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	api := app.Group("/api", cfg.Sessions.Handle)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", auth.Authenticated(), cfg.Auth.Me)

	dashboardUsers := api.Group("/dashboard-users", auth.AdminOnly())
	dashboardUsers.Get("/", cfg.DashboardUsers.List)
	dashboardUsers.Post("/", cfg.DashboardUsers.Create)
	dashboardUsers.Get("/:id", cfg.DashboardUsers.Get)
	dashboardUsers.Patch("/:id", cfg.DashboardUsers.Update)
	dashboardUsers.Delete("/:id", cfg.DashboardUsers.Delete)
	dashboardUsers.Patch("/:id/activate", cfg.DashboardUsers.Activate)
	dashboardUsers.Patch("/:id/verify", cfg.DashboardUsers.Verify)

	users := api.Group("/users", auth.AdminOnly())
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	chef := api.Group("/chef", auth.ChefOnly())
	chef.Get("/profile", cfg.ChefProfile.Get)
	chef.Put("/profile", cfg.ChefProfile.Update)

	api.Post("/upload", auth.Authenticated(), cfg.Upload.Upload)

	if cfg.Pages != nil {
		RegisterPages(app, cfg.Pages, cfg.Locales, cfg.Web)
	}
}
