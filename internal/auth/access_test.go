package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideUnprotectedPaths(t *testing.T) {
	router := NewAccessRouter()

	for _, path := range []string{"/", "/pricing", "/login", "/auth/login", "/static/app.css"} {
		assert.Equal(t, Allow, router.Decide(nil, path), path)
		assert.Equal(t, Allow, router.Decide(&Claim{SubjectID: "u", Role: "admin"}, path), path)
	}
}

func TestDecideNoTokenOnProtectedPage(t *testing.T) {
	router := NewAccessRouter()

	decision := router.Decide(nil, "/dashboard/my-jobs")
	assert.Equal(t, RedirectTo("/login"), decision)

	decision = router.Decide(nil, "/dashboard")
	assert.Equal(t, RedirectTo("/login"), decision)
}

func TestDecideNoTokenOnAPIPath(t *testing.T) {
	router := NewAccessRouter()

	for _, path := range []string{
		"/api/v1/jobs",
		"/api/v1/clients/42",
		"/api/v1/cash-transactions",
		"/api/v1/reports/cash-summary",
		"/api/v1/uploads",
	} {
		assert.Equal(t, Reject, router.Decide(nil, path), path)
	}
}

func TestDecideLandingPages(t *testing.T) {
	router := NewAccessRouter()

	tests := []struct {
		name string
		role string
		path string
		want Decision
	}{
		{"admin on generic root stays", "admin", "/dashboard", Allow},
		{"technician on generic root forwards", "tecnico", "/dashboard", RedirectTo("/dashboard/my-jobs")},
		{"technician on own landing page stays", "tecnico", "/dashboard/my-jobs", Allow},
		{"operador alias forwards like technician", "operador", "/dashboard", RedirectTo("/dashboard/my-jobs")},
		{"secretary on own landing page stays", "secretaria", "/dashboard/billing", Allow},
		{"secretary on generic root forwards", "secretaria", "/dashboard", RedirectTo("/dashboard/billing")},
		{"technician elsewhere allowed", "tecnico", "/dashboard/clients", Allow},
		{"authenticated API access allowed", "secretaria", "/api/v1/clients", Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := &Claim{SubjectID: "u", Role: tt.role}
			assert.Equal(t, tt.want, router.Decide(claim, tt.path))
		})
	}
}

// An unrecognized role is authenticated-but-unknown: it passes through, on
// the generic root included, rather than being rejected.
func TestDecideUnrecognizedRoleIsPermissive(t *testing.T) {
	router := NewAccessRouter()
	claim := &Claim{SubjectID: "u", Role: "contador"}

	assert.Equal(t, Allow, router.Decide(claim, "/dashboard"))
	assert.Equal(t, Allow, router.Decide(claim, "/dashboard/clients"))
	assert.Equal(t, Allow, router.Decide(claim, "/api/v1/jobs"))
}

// The landing-page match must be evaluated before the root forward, or a
// role requesting its own landing page would loop. These two pairs pin the
// ordering.
func TestDecideNoRedirectLoop(t *testing.T) {
	router := NewAccessRouter()

	tech := &Claim{SubjectID: "u", Role: "tecnico"}
	assert.Equal(t, RedirectTo("/dashboard/my-jobs"), router.Decide(tech, "/dashboard"))
	assert.Equal(t, Allow, router.Decide(tech, "/dashboard/my-jobs"))

	sec := &Claim{SubjectID: "u", Role: "secretaria"}
	assert.Equal(t, RedirectTo("/dashboard/billing"), router.Decide(sec, "/dashboard"))
	assert.Equal(t, Allow, router.Decide(sec, "/dashboard/billing"))
}

func TestDecideIsIdempotent(t *testing.T) {
	router := NewAccessRouter()
	claim := &Claim{SubjectID: "u", Role: "tecnico"}

	first := router.Decide(claim, "/dashboard")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, router.Decide(claim, "/dashboard"))
	}
}

func TestClassify(t *testing.T) {
	router := NewAccessRouter()

	kind, protected := router.Classify("/api/v1/jobs/123")
	assert.True(t, protected)
	assert.Equal(t, PathKindAPI, kind)

	kind, protected = router.Classify("/dashboard/billing")
	assert.True(t, protected)
	assert.Equal(t, PathKindPage, kind)

	_, protected = router.Classify("/dashboardx")
	assert.False(t, protected)

	_, protected = router.Classify("/api/v1/jobsmith")
	assert.False(t, protected)
}
