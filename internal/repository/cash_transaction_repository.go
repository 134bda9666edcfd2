package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/field-service/internal/domain"
)

// CashTransactionRepository defines persistence access for the cash ledger.
type CashTransactionRepository interface {
	Create(ctx context.Context, tx *domain.CashTransaction) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CashTransaction, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.CashTransaction, error)
	Summarize(ctx context.Context, from, to time.Time) (*domain.CashSummary, error)
}

type cashTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewCashTransactionRepository returns a Postgres-backed implementation.
func NewCashTransactionRepository(pool *pgxpool.Pool) CashTransactionRepository {
	return &cashTransactionRepository{pool: pool}
}

func (r *cashTransactionRepository) Create(ctx context.Context, tx *domain.CashTransaction) error {
	const query = `
        INSERT INTO cash_transactions (type, amount, description, job_id, occurred_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		tx.Type,
		tx.Amount,
		tx.Description,
		tx.JobID,
		tx.OccurredAt,
		tx.CreatedBy,
	).Scan(&tx.ID, &tx.CreatedAt)
}

func (r *cashTransactionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cash_transactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cashTransactionRepository) GetByID(ctx context.Context, id string) (*domain.CashTransaction, error) {
	const query = `
        SELECT id, type, amount, description, job_id, occurred_at, created_by, created_at
        FROM cash_transactions WHERE id=$1`

	var tx domain.CashTransaction
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tx.ID,
		&tx.Type,
		&tx.Amount,
		&tx.Description,
		&tx.JobID,
		&tx.OccurredAt,
		&tx.CreatedBy,
		&tx.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *cashTransactionRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.CashTransaction, error) {
	const query = `
        SELECT id, type, amount, description, job_id, occurred_at, created_by, created_at
        FROM cash_transactions
        WHERE occurred_at >= $1 AND occurred_at < $2
        ORDER BY occurred_at DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.CashTransaction
	for rows.Next() {
		var tx domain.CashTransaction
		if err := rows.Scan(
			&tx.ID,
			&tx.Type,
			&tx.Amount,
			&tx.Description,
			&tx.JobID,
			&tx.OccurredAt,
			&tx.CreatedBy,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, &tx)
	}
	return txs, rows.Err()
}

func (r *cashTransactionRepository) Summarize(ctx context.Context, from, to time.Time) (*domain.CashSummary, error) {
	const query = `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
            COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
        FROM cash_transactions
        WHERE occurred_at >= $1 AND occurred_at < $2`

	summary := &domain.CashSummary{From: from, To: to}
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&summary.Income, &summary.Expense); err != nil {
		return nil, err
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}
