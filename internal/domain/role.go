package domain

import "strings"

// Role tags a user with the area of the application it works in.
// The set is closed: anything the credential store holds that is not
// recognized here parses to RoleUnknown rather than failing.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSecretary  Role = "secretaria"
	RoleTechnician Role = "tecnico"
	RoleUnknown    Role = "unknown"
)

// ParseRole normalizes a stored role name into the closed role set.
// "operador" is a legacy alias for the technician role.
func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin":
		return RoleAdmin
	case "secretaria":
		return RoleSecretary
	case "tecnico", "operador":
		return RoleTechnician
	default:
		return RoleUnknown
	}
}

// Known reports whether the role belongs to the recognized set.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleSecretary || r == RoleTechnician
}
