package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the minimal server-rendered shells for the login page
// and the dashboard areas. The real views are filled in client-side; routing
// and gatekeeping happen here on the server.
type PagesHandler struct {
	appName string
}

// NewPagesHandler constructs handler.
func NewPagesHandler(appName string) *PagesHandler {
	return &PagesHandler{appName: appName}
}

// Login serves GET /login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return h.page(c, "Login", `<form method="post" action="/auth/login">`+
		`<input name="email" type="email" placeholder="email">`+
		`<input name="password" type="password" placeholder="password">`+
		`<button type="submit">Entrar</button></form>`)
}

// Dashboard serves GET /dashboard.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return h.page(c, "Dashboard", "<p>Resumen general</p>")
}

// MyJobs serves GET /dashboard/my-jobs.
func (h *PagesHandler) MyJobs(c *fiber.Ctx) error {
	return h.page(c, "Mis trabajos", "<p>Trabajos asignados</p>")
}

// Billing serves GET /dashboard/billing.
func (h *PagesHandler) Billing(c *fiber.Ctx) error {
	return h.page(c, "Caja", "<p>Movimientos de caja</p>")
}

// Clients serves GET /dashboard/clients.
func (h *PagesHandler) Clients(c *fiber.Ctx) error {
	return h.page(c, "Clientes", "<p>Listado de clientes</p>")
}

// Schedule serves GET /dashboard/schedule.
func (h *PagesHandler) Schedule(c *fiber.Ctx) error {
	return h.page(c, "Agenda", "<p>Agenda de trabajos</p>")
}

func (h *PagesHandler) page(c *fiber.Ctx, title, body string) error {
	c.Type("html", "utf-8")
	return c.SendString(fmt.Sprintf(
		"<!doctype html><html><head><title>%s | %s</title></head><body><h1>%s</h1>%s</body></html>",
		title, h.appName, title, body,
	))
}
