package domain

import "time"

// Client is a customer the business performs jobs for.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
