package domain

import "time"

// User is the domain model for application operators (admins, secretaries,
// technicians). RoleName carries the role record's name exactly as stored;
// authentication lowercases it before it reaches a session claim.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	RoleID       string
	RoleName     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleRecord is a row in the roles table.
type RoleRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
