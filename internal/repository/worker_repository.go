package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/field-service/internal/domain"
)

// WorkerRepository defines persistence access for field workers.
type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	Update(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	GetByEmail(ctx context.Context, email string) (*domain.Worker, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Worker, error)
}

type workerRepository struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository returns a Postgres-backed implementation.
func NewWorkerRepository(pool *pgxpool.Pool) WorkerRepository {
	return &workerRepository{pool: pool}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	const query = `
        INSERT INTO workers (name, email, phone, specialty, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		worker.Name,
		worker.Email,
		worker.Phone,
		worker.Specialty,
		worker.Active,
	).Scan(&worker.ID, &worker.CreatedAt, &worker.UpdatedAt)
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	const query = `
        UPDATE workers SET name=$1, email=$2, phone=$3, specialty=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		worker.Name,
		worker.Email,
		worker.Phone,
		worker.Specialty,
		worker.Active,
		worker.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	const query = `
        SELECT id, name, email, phone, specialty, active, created_at, updated_at
        FROM workers WHERE id=$1`

	return scanWorker(r.pool.QueryRow(ctx, query, id))
}

func (r *workerRepository) GetByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	const query = `
        SELECT id, name, email, phone, specialty, active, created_at, updated_at
        FROM workers WHERE LOWER(email)=LOWER($1)`

	return scanWorker(r.pool.QueryRow(ctx, query, email))
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Worker, error) {
	query := `
        SELECT id, name, email, phone, specialty, active, created_at, updated_at
        FROM workers ORDER BY name`
	if activeOnly {
		query = `
        SELECT id, name, email, phone, specialty, active, created_at, updated_at
        FROM workers WHERE active ORDER BY name`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		worker, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, worker)
	}
	return workers, rows.Err()
}

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var worker domain.Worker
	if err := row.Scan(
		&worker.ID,
		&worker.Name,
		&worker.Email,
		&worker.Phone,
		&worker.Specialty,
		&worker.Active,
		&worker.CreatedAt,
		&worker.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &worker, nil
}
