package http

import (
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/locale"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newPagesApp(t *testing.T) (*fiber.App, *auth.SessionCodec) {
	t.Helper()
	publicDir := t.TempDir()
	dashboardDir := t.TempDir()
	writeFile(t, filepath.Join(publicDir, "en", "index.html"), "home-en")
	writeFile(t, filepath.Join(publicDir, "mn", "index.html"), "home-mn")
	writeFile(t, filepath.Join(dashboardDir, "index.html"), "dashboard")

	codec := auth.NewSessionCodec("secret")
	store := auth.NewSessionStore(codec, false)
	negotiator := locale.NewNegotiator([]string{"en", "mn"}, "en")

	app := fiber.New()
	RegisterPages(app, NewPageRouter(store, negotiator), []string{"en", "mn"}, config.WebConfig{
		PublicDir:    publicDir,
		DashboardDir: dashboardDir,
	})
	return app, codec
}

func sessionCookie(t *testing.T, codec *auth.SessionCodec, claims domain.SessionClaims) *stdhttp.Cookie {
	t.Helper()
	token, _, err := codec.Mint(claims)
	require.NoError(t, err)
	return &stdhttp.Cookie{Name: auth.SessionCookieName, Value: token}
}

func TestDashboardRedirectsAnonymousToLogin(t *testing.T) {
	app, _ := newPagesApp(t)

	tests := map[string]string{
		"":   "/en/login",
		"mn": "/mn/login",
		"en": "/en/login",
		"xx": "/en/login",
	}
	for last, want := range tests {
		req := httptest.NewRequest(stdhttp.MethodGet, "/dashboard/users", nil)
		if last != "" {
			req.AddCookie(&stdhttp.Cookie{Name: locale.LastLocaleCookie, Value: last})
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, stdhttp.StatusTemporaryRedirect, resp.StatusCode, "lastLocale %q", last)
		assert.Equal(t, want, resp.Header.Get("Location"), "lastLocale %q", last)
	}
}

func TestDashboardRedirectsCustomerSession(t *testing.T) {
	app, codec := newPagesApp(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, codec, domain.SessionClaims{UserID: "c1", Category: domain.CategoryCustomer}))
	req.AddCookie(&stdhttp.Cookie{Name: locale.LastLocaleCookie, Value: "mn"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/mn/login", resp.Header.Get("Location"))
}

func TestDashboardPassesThroughForDashboardSession(t *testing.T) {
	app, codec := newPagesApp(t)

	for _, role := range []domain.DashboardRole{domain.RoleAdmin, domain.RoleChef, domain.RoleCompany} {
		req := httptest.NewRequest(stdhttp.MethodGet, "/dashboard", nil)
		req.AddCookie(sessionCookie(t, codec, domain.SessionClaims{UserID: "d1", Category: domain.CategoryDashboard, Role: role}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode, role)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "dashboard", string(body))
	}
}

func TestRootRedirectsToNegotiatedLocale(t *testing.T) {
	app, _ := newPagesApp(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/?ref=ad", nil)
	req.Header.Set("Accept-Language", "mn-MN,mn;q=0.9,en;q=0.5")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/mn?ref=ad", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "/en", resp.Header.Get("Location"))
}

func TestLocalizedPageRemembersLocale(t *testing.T) {
	app, _ := newPagesApp(t)

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/mn/", nil))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var last *stdhttp.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == locale.LastLocaleCookie {
			last = ck
		}
	}
	require.NotNil(t, last)
	assert.Equal(t, "mn", last.Value)
	assert.Equal(t, "/", last.Path)
	assert.Equal(t, 31536000, last.MaxAge)
	assert.Equal(t, stdhttp.SameSiteLaxMode, last.SameSite)
}
