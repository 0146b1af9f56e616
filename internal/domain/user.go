package domain

import "strings"

// Role determines what a user may do across tenants.
type Role string

const (
	RoleSuperadmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// ParseRole normalizes a raw role value.
func ParseRole(value string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(value)))
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User is a back-office account scoped to a tenant.
type User struct {
	ID             int64
	Username       string
	TenantID       int64
	Role           Role
	Name           string
	JobTitle       string
	Profile        string
	Permission     string
	Phone          string
	Email          string
	HashedPassword string
	Active         bool
}

// IsSuperadmin reports whether the user may act across tenants.
func (u *User) IsSuperadmin() bool {
	return u.Role == RoleSuperadmin
}
