package domain

// AuthState is the single source of truth for the admin session.
// There is exactly one admin role, gated by one shared password.
type AuthState struct {
	Admin bool `json:"admin"`
}
