package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/events"
	"github.com/spec-kit/field-service/internal/repository"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

type fakeJobRepo struct {
	jobs map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = "job-1"
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) List(_ context.Context, filter repository.JobFilter) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, job := range r.jobs {
		if filter.WorkerID != nil && (job.WorkerID == nil || *job.WorkerID != *filter.WorkerID) {
			continue
		}
		if filter.ClientID != nil && job.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != nil && job.Status != *filter.Status {
			continue
		}
		copied := *job
		out = append(out, &copied)
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]*domain.Client
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return client, nil
}

func (r *fakeClientRepo) List(context.Context) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, client := range r.clients {
		out = append(out, client)
	}
	return out, nil
}

type fakeWorkerRepo struct {
	workers map[string]*domain.Worker
}

func (r *fakeWorkerRepo) Create(_ context.Context, worker *domain.Worker) error {
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, worker *domain.Worker) error {
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id string) (*domain.Worker, error) {
	worker, ok := r.workers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return worker, nil
}

func (r *fakeWorkerRepo) GetByEmail(_ context.Context, email string) (*domain.Worker, error) {
	for _, worker := range r.workers {
		if worker.Email == email {
			return worker, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeWorkerRepo) List(_ context.Context, activeOnly bool) ([]*domain.Worker, error) {
	var out []*domain.Worker
	for _, worker := range r.workers {
		if activeOnly && !worker.Active {
			continue
		}
		out = append(out, worker)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

type jobServiceFixture struct {
	service    *JobService
	jobs       *fakeJobRepo
	dispatcher events.Dispatcher
	published  *[]events.Event
}

func newJobServiceFixture() jobServiceFixture {
	jobs := newFakeJobRepo()
	clients := &fakeClientRepo{clients: map[string]*domain.Client{
		"client-1": {ID: "client-1", Name: "Acme"},
	}}
	workers := &fakeWorkerRepo{workers: map[string]*domain.Worker{
		"worker-1": {ID: "worker-1", Name: "Ana", Email: "ana@example.com", Active: true},
		"worker-2": {ID: "worker-2", Name: "Luis", Email: "luis@example.com", Active: false},
	}}
	users := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "ana@example.com", RoleName: "tecnico"},
	}}

	dispatcher := events.NewInMemoryDispatcher()
	published := &[]events.Event{}
	record := func(_ context.Context, e events.Event) error {
		*published = append(*published, e)
		return nil
	}
	for _, eventType := range []events.EventType{events.EventJobCreated, events.EventJobAssigned, events.EventJobStatusChanged} {
		dispatcher.Subscribe(eventType, record)
	}

	return jobServiceFixture{
		service:    NewJobService(jobs, clients, workers, users, dispatcher),
		jobs:       jobs,
		dispatcher: dispatcher,
		published:  published,
	}
}

func (f jobServiceFixture) seedJob(t *testing.T, status domain.JobStatus) *domain.Job {
	t.Helper()
	job := &domain.Job{ID: "job-1", ClientID: "client-1", Title: "Fix boiler", Status: status}
	require.NoError(t, f.jobs.Create(context.Background(), job))
	return job
}

func TestJobServiceCreate(t *testing.T) {
	f := newJobServiceFixture()

	job := &domain.Job{ClientID: "client-1", Title: "Fix boiler"}
	require.NoError(t, f.service.Create(context.Background(), job))
	assert.Equal(t, domain.JobStatusScheduled, job.Status)

	require.Len(t, *f.published, 1)
	assert.Equal(t, events.EventJobCreated, (*f.published)[0].Type)
}

func TestJobServiceCreateRejectsUnknownClient(t *testing.T) {
	f := newJobServiceFixture()

	err := f.service.Create(context.Background(), &domain.Job{ClientID: "nope", Title: "Fix boiler"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Empty(t, *f.published)
}

func TestJobServiceCreateRequiresTitle(t *testing.T) {
	f := newJobServiceFixture()

	err := f.service.Create(context.Background(), &domain.Job{ClientID: "client-1", Title: "   "})
	require.Error(t, err)
}

func TestJobServiceAssign(t *testing.T) {
	f := newJobServiceFixture()
	f.seedJob(t, domain.JobStatusScheduled)

	job, err := f.service.Assign(context.Background(), "job-1", "worker-1")
	require.NoError(t, err)
	require.NotNil(t, job.WorkerID)
	assert.Equal(t, "worker-1", *job.WorkerID)

	require.Len(t, *f.published, 1)
	assert.Equal(t, events.EventJobAssigned, (*f.published)[0].Type)
}

func TestJobServiceAssignRejectsInactiveWorker(t *testing.T) {
	f := newJobServiceFixture()
	f.seedJob(t, domain.JobStatusScheduled)

	_, err := f.service.Assign(context.Background(), "job-1", "worker-2")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestJobServiceChangeStatus(t *testing.T) {
	f := newJobServiceFixture()
	f.seedJob(t, domain.JobStatusInProgress)

	job, err := f.service.ChangeStatus(context.Background(), "job-1", domain.JobStatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDone, job.Status)
	assert.NotNil(t, job.CompletedAt)

	require.Len(t, *f.published, 1)
	assert.Equal(t, events.EventJobStatusChanged, (*f.published)[0].Type)
}

func TestJobServiceChangeStatusRejectsInvalidTransition(t *testing.T) {
	f := newJobServiceFixture()
	f.seedJob(t, domain.JobStatusScheduled)

	_, err := f.service.ChangeStatus(context.Background(), "job-1", domain.JobStatusDone)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 409, domainErr.HTTPStatus)
	assert.Empty(t, *f.published)
}

func TestJobServiceListForUser(t *testing.T) {
	f := newJobServiceFixture()
	f.seedJob(t, domain.JobStatusScheduled)

	_, err := f.service.Assign(context.Background(), "job-1", "worker-1")
	require.NoError(t, err)

	other := &domain.Job{ID: "job-2", ClientID: "client-1", Title: "Other", Status: domain.JobStatusScheduled}
	require.NoError(t, f.jobs.Create(context.Background(), other))

	mine, err := f.service.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "job-1", mine[0].ID)
}

func TestJobServiceListForUserWithoutWorkerLink(t *testing.T) {
	f := newJobServiceFixture()

	_, err := f.service.ListForUser(context.Background(), "missing-user")
	require.Error(t, err)
}
