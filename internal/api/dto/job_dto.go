package dto

import "time"

// JobCreateRequest payload for creating a job.
type JobCreateRequest struct {
	ClientID    string     `json:"client_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Price       int64      `json:"price"`
}

// JobAssignRequest payload for assigning a worker.
type JobAssignRequest struct {
	WorkerID string `json:"worker_id"`
}

// JobStatusRequest payload for a status transition.
type JobStatusRequest struct {
	Status string `json:"status"`
}

// JobPhotoRequest payload for attaching an uploaded photo.
type JobPhotoRequest struct {
	URL string `json:"url"`
}
