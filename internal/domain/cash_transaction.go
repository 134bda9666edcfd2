package domain

import "time"

// CashTransactionType distinguishes money in from money out.
type CashTransactionType string

const (
	CashTransactionIncome  CashTransactionType = "INCOME"
	CashTransactionExpense CashTransactionType = "EXPENSE"
)

// CashTransaction is a single ledger entry, amount in cents.
type CashTransaction struct {
	ID          string
	Type        CashTransactionType
	Amount      int64
	Description string
	JobID       *string
	OccurredAt  time.Time
	CreatedBy   string
	CreatedAt   time.Time
}

// CashSummary aggregates ledger entries over a period.
type CashSummary struct {
	From    time.Time
	To      time.Time
	Income  int64
	Expense int64
	Balance int64
}
