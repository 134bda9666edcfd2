package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/field-service/internal/api/http"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/observability"
)

const (
	testCookie = "fs_session"
	testSecret = "test-secret"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.SessionIssuer) {
	t.Helper()

	issuer, err := auth.NewSessionIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	mw := auth.NewMiddleware(issuer, auth.NewAccessRouter(), testCookie, zap.NewNop())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Use(mw.Handle)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/login", ok)
	app.Get("/dashboard", ok)
	app.Get("/dashboard/my-jobs", ok)
	app.Get("/api/v1/jobs", ok)
	app.Get("/api/v1/jobs/whoami", func(c *fiber.Ctx) error {
		claim, found := auth.ClaimFromContext(c)
		if !found {
			return c.SendString("anonymous")
		}
		return c.SendString(claim.SubjectID + ":" + claim.Role)
	})
	app.Get("/api/v1/clients", auth.RequireRole(domain.RoleAdmin, domain.RoleSecretary), ok)

	return app, issuer
}

func requestWithToken(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	return req
}

func TestMiddlewareAllowsPublicPaths(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/", "/login"} {
		resp, err := app.Test(requestWithToken(http.MethodGet, target, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
	}
}

func TestMiddlewareRedirectsAnonymousPageRequests(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/dashboard/my-jobs", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestMiddlewareRejectsAnonymousAPIRequests(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/api/v1/jobs", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
}

func TestMiddlewareForwardsRoleToLandingPage(t *testing.T) {
	app, issuer := newTestApp(t)

	token, _, err := issuer.Issue(auth.Claim{SubjectID: "user-1", Role: "tecnico"})
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/dashboard", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard/my-jobs", resp.Header.Get("Location"))

	resp, err = app.Test(requestWithToken(http.MethodGet, "/dashboard/my-jobs", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareAdminStaysOnRoot(t *testing.T) {
	app, issuer := newTestApp(t)

	token, _, err := issuer.Issue(auth.Claim{SubjectID: "user-1", Role: "admin"})
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/dashboard", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareExposesClaimToHandlers(t *testing.T) {
	app, issuer := newTestApp(t)

	token, _, err := issuer.Issue(auth.Claim{SubjectID: "user-1", Role: "admin"})
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/api/v1/jobs/whoami", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-1:admin", string(body))
}

func TestRequireRoleGuardsAPIRoutes(t *testing.T) {
	app, issuer := newTestApp(t)

	techToken, _, err := issuer.Issue(auth.Claim{SubjectID: "user-1", Role: "tecnico"})
	require.NoError(t, err)
	resp, err := app.Test(requestWithToken(http.MethodGet, "/api/v1/clients", techToken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	secToken, _, err := issuer.Issue(auth.Claim{SubjectID: "user-2", Role: "secretaria"})
	require.NoError(t, err)
	resp, err = app.Test(requestWithToken(http.MethodGet, "/api/v1/clients", secToken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// An expired session must route exactly like no session at all.
func TestMiddlewareTreatsExpiredAsAnonymous(t *testing.T) {
	app, _ := newTestApp(t)

	shortLived, err := auth.NewSessionIssuer(testSecret, time.Nanosecond)
	require.NoError(t, err)
	token, _, err := shortLived.Issue(auth.Claim{SubjectID: "user-1", Role: "admin"})
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/dashboard", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, err = app.Test(requestWithToken(http.MethodGet, "/api/v1/jobs", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareTreatsGarbageTokenAsAnonymous(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(requestWithToken(http.MethodGet, "/dashboard", "tampered"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
