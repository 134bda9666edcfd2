package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/api/http/handlers"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Pages     *handlers.PagesHandler
	Clients   *handlers.ClientsHandler
	Jobs      *handlers.JobsHandler
	Workers   *handlers.WorkersHandler
	Cash      *handlers.CashHandler
	Uploads   *handlers.UploadsHandler
	Roles     *handlers.RolesHandler
	Analytics *handlers.AnalyticsHandler
	Session   *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The session middleware runs on every
// request; unprotected paths pass through it untouched.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.Session.Handle)

	app.Get("/login", cfg.Pages.Login)
	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/auth/logout", cfg.Auth.Logout)

	app.Get("/dashboard", cfg.Pages.Dashboard)
	app.Get("/dashboard/my-jobs", cfg.Pages.MyJobs)
	app.Get("/dashboard/billing", cfg.Pages.Billing)
	app.Get("/dashboard/clients", cfg.Pages.Clients)
	app.Get("/dashboard/schedule", cfg.Pages.Schedule)

	api := app.Group("/api/v1")
	api.Get("/auth/me", cfg.Auth.Me)

	adminOrSecretary := auth.RequireRole(domain.RoleAdmin, domain.RoleSecretary)

	clients := api.Group("/clients")
	clients.Get("/", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Post("/", adminOrSecretary, cfg.Clients.Create)
	clients.Put("/:id", adminOrSecretary, cfg.Clients.Update)
	clients.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Clients.Delete)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/mine", cfg.Jobs.Mine)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", adminOrSecretary, cfg.Jobs.Create)
	jobs.Post("/:id/assign", adminOrSecretary, cfg.Jobs.Assign)
	jobs.Post("/:id/status", cfg.Jobs.ChangeStatus)
	jobs.Post("/:id/photo", cfg.Jobs.AttachPhoto)

	workers := api.Group("/workers")
	workers.Get("/", cfg.Workers.List)
	workers.Get("/:id", cfg.Workers.Get)
	workers.Post("/", adminOrSecretary, cfg.Workers.Create)
	workers.Put("/:id", adminOrSecretary, cfg.Workers.Update)

	cash := api.Group("/cash-transactions")
	cash.Get("/", adminOrSecretary, cfg.Cash.List)
	cash.Post("/", adminOrSecretary, cfg.Cash.Create)
	cash.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Cash.Delete)

	api.Get("/reports/cash-summary", adminOrSecretary, cfg.Cash.Summary)
	api.Get("/schedule", cfg.Jobs.Schedule)
	api.Post("/uploads", cfg.Uploads.Upload)
	api.Get("/roles", auth.RequireRole(domain.RoleAdmin), cfg.Roles.List)
	api.Get("/analytics/metrics", auth.RequireRole(domain.RoleAdmin), cfg.Analytics.Metrics)
}
