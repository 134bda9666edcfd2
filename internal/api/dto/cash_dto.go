package dto

import "time"

// CashTransactionRequest payload for recording a ledger entry.
type CashTransactionRequest struct {
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	JobID       *string    `json:"job_id,omitempty"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}
