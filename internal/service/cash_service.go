package service

import (
	"context"
	"time"

	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/repository"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// CashService coordinates the cash ledger and its summaries.
type CashService struct {
	transactions repository.CashTransactionRepository
}

// NewCashService builds the service.
func NewCashService(transactions repository.CashTransactionRepository) *CashService {
	return &CashService{transactions: transactions}
}

// Record validates and persists a ledger entry.
func (s *CashService) Record(ctx context.Context, tx *domain.CashTransaction) error {
	if tx.Type != domain.CashTransactionIncome && tx.Type != domain.CashTransactionExpense {
		return apperrors.NewValidationError("transaction type must be INCOME or EXPENSE", nil)
	}
	if tx.Amount <= 0 {
		return apperrors.NewValidationError("amount must be positive", nil)
	}
	if tx.OccurredAt.IsZero() {
		tx.OccurredAt = time.Now()
	}
	return s.transactions.Create(ctx, tx)
}

// Delete removes a ledger entry.
func (s *CashService) Delete(ctx context.Context, id string) error {
	return s.transactions.Delete(ctx, id)
}

// ListByPeriod returns entries in [from, to).
func (s *CashService) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.CashTransaction, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationError("period end must follow start", nil)
	}
	return s.transactions.ListByPeriod(ctx, from, to)
}

// Summarize aggregates income, expense and balance over [from, to).
func (s *CashService) Summarize(ctx context.Context, from, to time.Time) (*domain.CashSummary, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationError("period end must follow start", nil)
	}
	return s.transactions.Summarize(ctx, from, to)
}
