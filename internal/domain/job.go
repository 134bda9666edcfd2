package domain

import "time"

// JobStatus enumerates lifecycle states for field jobs.
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "SCHEDULED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusDone       JobStatus = "DONE"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Job is the aggregate for a unit of field work performed for a client.
type Job struct {
	ID          string
	ClientID    string
	WorkerID    *string
	Title       string
	Description string
	Status      JobStatus
	ScheduledAt *time.Time
	Price       int64
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// ValidJobTransition reports whether a status change is allowed.
func ValidJobTransition(from, to JobStatus) bool {
	switch from {
	case JobStatusScheduled:
		return to == JobStatusInProgress || to == JobStatusCancelled
	case JobStatusInProgress:
		return to == JobStatusDone || to == JobStatusCancelled
	default:
		return false
	}
}
