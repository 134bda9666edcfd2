package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/field-service/internal/domain"
)

// JobFilter narrows job listings.
type JobFilter struct {
	ClientID *string
	WorkerID *string
	Status   *domain.JobStatus
}

// JobRepository defines persistence access for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, client_id, worker_id, title, description, status, scheduled_at, price, photo_url, created_at, updated_at, completed_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (client_id, worker_id, title, description, status, scheduled_at, price, photo_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		job.ClientID,
		job.WorkerID,
		job.Title,
		job.Description,
		job.Status,
		job.ScheduledAt,
		job.Price,
		job.PhotoURL,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET client_id=$1, worker_id=$2, title=$3, description=$4, status=$5,
            scheduled_at=$6, price=$7, photo_url=$8, completed_at=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		job.ClientID,
		job.WorkerID,
		job.Title,
		job.Description,
		job.Status,
		job.ScheduledAt,
		job.Price,
		job.PhotoURL,
		job.CompletedAt,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id))
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += ` AND client_id=$` + strconv.Itoa(len(args))
	}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		query += ` AND worker_id=$` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND status=$` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY scheduled_at NULLS LAST, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.ClientID,
		&job.WorkerID,
		&job.Title,
		&job.Description,
		&job.Status,
		&job.ScheduledAt,
		&job.Price,
		&job.PhotoURL,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
