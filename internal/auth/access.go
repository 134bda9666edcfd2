package auth

import (
	"strings"

	"github.com/spec-kit/field-service/internal/domain"
)

// Outcome is the three-way result of an access decision.
type Outcome int

const (
	OutcomeAllow Outcome = iota
	OutcomeRedirect
	OutcomeReject
)

// Decision is what the access router yields for a request. The router never
// errors: every (claim, path) pair maps to a defined decision.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Allow passes the request through to its handler.
var Allow = Decision{Outcome: OutcomeAllow}

// Reject answers 401 without invoking the handler.
var Reject = Decision{Outcome: OutcomeReject}

// RedirectTo answers an HTTP redirect to target.
func RedirectTo(target string) Decision {
	return Decision{Outcome: OutcomeRedirect, Target: target}
}

// PathKind separates browser page paths from API paths. Unauthenticated
// requests to pages redirect to the login page; API paths get a bare 401.
type PathKind int

const (
	PathKindPage PathKind = iota
	PathKindAPI
)

type accessRule func(role domain.Role, path string) (Decision, bool)

// AccessRouter owns the static route-rule table and decides, per request,
// whether a requester may reach a path. It only reads claims.
type AccessRouter struct {
	pagePrefixes []string
	apiPrefixes  []string
	loginPath    string
	rootPath     string
	landing      map[domain.Role]string
	rules        []accessRule
}

// NewAccessRouter builds the router with the application's rule table.
func NewAccessRouter() *AccessRouter {
	r := &AccessRouter{
		pagePrefixes: []string{"/dashboard"},
		apiPrefixes: []string{
			"/api/v1/jobs",
			"/api/v1/clients",
			"/api/v1/workers",
			"/api/v1/services",
			"/api/v1/cash-transactions",
			"/api/v1/invoices",
			"/api/v1/reports",
			"/api/v1/roles",
			"/api/v1/uploads",
			"/api/v1/analytics",
			"/api/v1/schedule",
			"/api/v1/auth",
		},
		loginPath: "/login",
		rootPath:  "/dashboard",
		landing: map[domain.Role]string{
			domain.RoleAdmin:      "/dashboard",
			domain.RoleTechnician: "/dashboard/my-jobs",
			domain.RoleSecretary:  "/dashboard/billing",
		},
	}
	// Ordered top-to-bottom. The landing-page exact match must stay ahead
	// of the root forward: a role requesting its own landing page under the
	// root would otherwise be redirected to itself forever.
	r.rules = []accessRule{
		r.ownLandingPage,
		r.rootForward,
	}
	return r
}

// Decide maps (claim, requested path) to a decision. A nil claim means no
// usable session; expired sessions are normalized to nil upstream.
func (r *AccessRouter) Decide(claim *Claim, path string) Decision {
	kind, protected := r.Classify(path)
	if !protected {
		return Allow
	}

	if claim == nil {
		if kind == PathKindAPI {
			return Reject
		}
		return RedirectTo(r.loginPath)
	}

	role := domain.ParseRole(claim.Role)
	for _, rule := range r.rules {
		if decision, ok := rule(role, path); ok {
			return decision
		}
	}

	// Any authenticated identity may reach remaining protected paths.
	// RoleUnknown lands here too: sessions carrying a role outside the
	// known set are allowed through, not rejected.
	return Allow
}

// Classify reports the path's kind and whether it is protected at all.
func (r *AccessRouter) Classify(path string) (PathKind, bool) {
	for _, prefix := range r.apiPrefixes {
		if underPrefix(path, prefix) {
			return PathKindAPI, true
		}
	}
	for _, prefix := range r.pagePrefixes {
		if underPrefix(path, prefix) {
			return PathKindPage, true
		}
	}
	return PathKindPage, false
}

// LandingPage returns the configured landing page for a role, if any.
func (r *AccessRouter) LandingPage(role domain.Role) (string, bool) {
	target, ok := r.landing[role]
	return target, ok
}

func (r *AccessRouter) ownLandingPage(role domain.Role, path string) (Decision, bool) {
	if target, ok := r.landing[role]; ok && path == target {
		return Allow, true
	}
	return Decision{}, false
}

func (r *AccessRouter) rootForward(role domain.Role, path string) (Decision, bool) {
	if path != r.rootPath {
		return Decision{}, false
	}
	if target, ok := r.landing[role]; ok && target != r.rootPath {
		return RedirectTo(target), true
	}
	return Decision{}, false
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
