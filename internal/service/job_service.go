package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/events"
	"github.com/spec-kit/field-service/internal/repository"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// JobService coordinates job lifecycle: creation, assignment, status moves.
type JobService struct {
	jobs       repository.JobRepository
	clients    repository.ClientRepository
	workers    repository.WorkerRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, clients repository.ClientRepository, workers repository.WorkerRepository, users repository.UserRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, clients: clients, workers: workers, users: users, dispatcher: dispatcher}
}

// Create validates the client reference and persists a scheduled job.
func (s *JobService) Create(ctx context.Context, job *domain.Job) error {
	if strings.TrimSpace(job.Title) == "" {
		return apperrors.NewValidationError("job title required", nil)
	}
	if _, err := s.clients.GetByID(ctx, job.ClientID); err != nil {
		return apperrors.NewValidationError("unknown client", map[string]any{"client_id": job.ClientID})
	}
	job.Status = domain.JobStatusScheduled

	if err := s.jobs.Create(ctx, job); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobCreated,
		SubjectID: job.ID,
		Timestamp: time.Now(),
		Payload: events.JobCreatedPayload{
			ClientID:    job.ClientID,
			Title:       job.Title,
			ScheduledAt: job.ScheduledAt,
		},
	})
	return nil
}

// Assign sets the worker for a job. Only active workers are assignable.
func (s *JobService) Assign(ctx context.Context, jobID, workerID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if !worker.Active {
		return nil, apperrors.NewConflict("worker is inactive", map[string]any{"worker_id": workerID})
	}

	job.WorkerID = &worker.ID
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobAssigned,
		SubjectID: job.ID,
		Timestamp: time.Now(),
		Payload:   events.JobAssignedPayload{WorkerID: worker.ID},
	})
	return job, nil
}

// ChangeStatus moves a job through its lifecycle, rejecting invalid
// transitions.
func (s *JobService) ChangeStatus(ctx context.Context, jobID string, next domain.JobStatus) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !domain.ValidJobTransition(job.Status, next) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": job.Status,
			"to":   next,
		})
	}

	old := job.Status
	job.Status = next
	if next == domain.JobStatusDone {
		now := time.Now()
		job.CompletedAt = &now
	}
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobStatusChanged,
		SubjectID: job.ID,
		Timestamp: time.Now(),
		Payload:   events.JobStatusChangedPayload{OldStatus: old, NewStatus: next},
	})
	return job, nil
}

// AttachPhoto records the stored photo URL on a job.
func (s *JobService) AttachPhoto(ctx context.Context, jobID, url string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	job.PhotoURL = &url
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get fetches a job by id.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns jobs matching the filter.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) ([]*domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// ListForUser returns jobs assigned to the worker whose email matches the
// given operator account. Technicians browsing their own jobs go through
// here; the worker link is by login email.
func (s *JobService) ListForUser(ctx context.Context, userID string) ([]*domain.Job, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	worker, err := s.workers.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	return s.jobs.List(ctx, repository.JobFilter{WorkerID: &worker.ID})
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
