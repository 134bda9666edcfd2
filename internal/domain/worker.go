package domain

import "time"

// Worker is a field technician jobs can be assigned to. Workers may or may
// not have a login of their own; the link to users is by email when present.
type Worker struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Specialty string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
