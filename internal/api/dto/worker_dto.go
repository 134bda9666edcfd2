package dto

// WorkerRequest payload for creating or updating a worker.
type WorkerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Active    *bool  `json:"active,omitempty"`
}
