package model

// Role represents user roles in the system. Every user has exactly one.
type Role string

// Role codes as constants
const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleVendor  Role = "VENDOR"
)

// AllRoles lists the recognized role codes.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleVendor}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleVendor:
		return true
	}
	return false
}
