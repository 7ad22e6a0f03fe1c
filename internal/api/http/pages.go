package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/locale"
)

const lastLocaleMaxAge = 365 * 24 * time.Hour

// PageRouter decides, per page request, between passing through to the built
// site and redirecting. It runs before static file serving.
type PageRouter struct {
	sessions   *auth.SessionStore
	negotiator *locale.Negotiator
}

// NewPageRouter constructs a page router.
func NewPageRouter(sessions *auth.SessionStore, negotiator *locale.Negotiator) *PageRouter {
	return &PageRouter{sessions: sessions, negotiator: negotiator}
}

// Dashboard sends visitors without a dashboard session to the login page of
// their last visited locale.
func (p *PageRouter) Dashboard(c *fiber.Ctx) error {
	if session := p.sessions.GetSession(c); session.IsDashboard() {
		return c.Next()
	}
	return c.Redirect(p.negotiator.LoginPath(c.Cookies(locale.LastLocaleCookie)), http.StatusTemporaryRedirect)
}

// Localized redirects the site root to the negotiated locale and remembers
// the locale of every localized page visit.
func (p *PageRouter) Localized(c *fiber.Ctx) error {
	decision := p.negotiator.Negotiate(c.Path(), c.Get(fiber.HeaderAcceptLanguage))
	if decision.Action == locale.Redirect {
		location := decision.Location
		if query := c.Request().URI().QueryString(); len(query) > 0 {
			location += "?" + string(query)
		}
		return c.Redirect(location, http.StatusTemporaryRedirect)
	}
	if decision.Locale != "" {
		c.Cookie(&fiber.Cookie{
			Name:     locale.LastLocaleCookie,
			Value:    decision.Locale,
			Path:     "/",
			MaxAge:   int(lastLocaleMaxAge / time.Second),
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Next()
}

// RegisterPages mounts the page routing rules and the built site.
func RegisterPages(app *fiber.App, pages *PageRouter, supported []string, web config.WebConfig) {
	app.Get("/", pages.Localized)
	for _, l := range supported {
		app.Use("/"+l, pages.Localized)
	}
	app.Use("/dashboard", pages.Dashboard)

	if web.DashboardDir != "" {
		app.Static("/dashboard", web.DashboardDir)
	}
	if web.PublicDir != "" {
		app.Static("/", web.PublicDir)
	}
}
