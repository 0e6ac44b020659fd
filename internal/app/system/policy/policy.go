// Package policy holds the role-to-route authorization rules and the
// HTTP gate that enforces them.
package policy

import (
	"strings"

	"github.com/guichet-ga/guichet/internal/domain/models"
)

// Policy maps roles to the route prefixes they may enter and the
// dashboard they land on. The zero value denies everything; use
// Default() for the portal's rules.
type Policy struct {
	allowed  map[models.Role][]string
	defaults map[models.Role]string
	public   map[string]struct{}
}

// Default returns the portal's authorization policy.
//
// MANAGER deliberately gets /admin in addition to /manager: managers
// supervise the agent teams of their organization and share the admin
// screens scoped to it.
func Default() *Policy {
	return &Policy{
		allowed: map[models.Role][]string{
			models.RoleSuperAdmin: {"/admin"},
			models.RoleAdmin:      {"/admin"},
			models.RoleManager:    {"/manager", "/admin"},
			models.RoleAgent:      {"/agent"},
			models.RoleUser:       {"/citoyen"},
		},
		defaults: map[models.Role]string{
			models.RoleSuperAdmin: "/admin/dashboard",
			models.RoleAdmin:      "/admin/dashboard",
			models.RoleManager:    "/manager/dashboard",
			models.RoleAgent:      "/agent/dashboard",
			models.RoleUser:       "/citoyen/dashboard",
		},
		public: map[string]struct{}{
			"/":         {},
			"/services": {},
			"/aide":     {},
			"/contact":  {},
		},
	}
}

// IsPublic reports whether the path needs no session at all. Auth
// pages, health and static assets always pass; the public site pages
// match exactly.
func (p *Policy) IsPublic(path string) bool {
	if path == "/health" {
		return true
	}
	if strings.HasPrefix(path, "/auth/") || path == "/auth" {
		return true
	}
	if strings.HasPrefix(path, "/static/") {
		return true
	}
	_, ok := p.public[path]
	return ok
}

// Allows reports whether the role may enter the given path. A path
// matches when it equals an allowed prefix or sits under it.
func (p *Policy) Allows(role models.Role, path string) bool {
	for _, prefix := range p.allowed[role] {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// DefaultPath returns the dashboard a role lands on after login or
// after a denied request. Unknown roles go to the home page.
func (p *Policy) DefaultPath(role models.Role) string {
	if d, ok := p.defaults[role]; ok {
		return d
	}
	return "/"
}
