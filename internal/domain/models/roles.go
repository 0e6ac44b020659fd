// internal/domain/models/roles.go
package models

// Role identifies one of the five access levels of the portal.
//
// The set is closed: policy tables switch exhaustively over these
// constants, so adding a role is a compile-visible change rather than a
// new string key appearing at runtime.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleAgent      Role = "AGENT"
	RoleUser       Role = "USER" // citizen account
)

// AllRoles returns the roles in descending order of privilege.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleAgent, RoleUser}
}

// IsValid reports whether r is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleAgent, RoleUser:
		return true
	default:
		return false
	}
}

// Label returns the French display name shown in the UI.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Administrateur"
	case RoleAdmin:
		return "Administrateur"
	case RoleManager:
		return "Responsable"
	case RoleAgent:
		return "Agent"
	case RoleUser:
		return "Citoyen"
	default:
		return string(r)
	}
}

// ParseRole converts a stored string into a Role, reporting whether it
// is one of the known values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
