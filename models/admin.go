// Package models defines data structures used across the application.
// File: models/admin.go
package models

// ----------------------- admin identity -----------------------

// AdminIdentity is the single privileged operator. It is configuration,
// never stored.
type AdminIdentity struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
	IsAdmin  bool     `json:"isAdmin"`
}

// RoleAdmin is the role that grants admin access.
const RoleAdmin = "admin"

// HasRole reports whether the identity carries role.
func (a *AdminIdentity) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
