package domain

import (
	"context"
	"time"
)

// Account transaction types.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Deposit match statuses.
const (
	MatchUnmatched = "unmatched"
	MatchConfirmed = "confirmed"
	MatchCancelled = "cancelled"
)

// AccountTransaction is a bank account movement synced from the bank feed.
// swagger:model AccountTransaction
type AccountTransaction struct {
	ID                    int64     `json:"id"`
	TransactionID         string    `json:"transaction_id"`
	TransactionDate       Date      `json:"transaction_date"`
	TransactionTime       Clock     `json:"transaction_time"`
	TransactionType       string    `json:"transaction_type"`
	Amount                int       `json:"amount"`
	Balance               int       `json:"balance"`
	DepositorName         string    `json:"depositor_name"`
	Memo                  string    `json:"memo"`
	MatchStatus           string    `json:"match_status"`
	MatchedReservationIDs []int64   `json:"matched_reservation_ids"`
	CreatedAt             time.Time `json:"created_at"`
}

// MatchReport summarizes one payment matching run.
type MatchReport struct {
	Groups    int `json:"groups"`
	Confirmed int `json:"confirmed"`
	Skipped   int `json:"skipped"`
}

// MaxSplitDeposits is the most deposits that may together pay for one customer's bookings.
const MaxSplitDeposits = 5

// FindSplitPayment returns the first combination of at most maxParts candidates, taken in
// candidate order and preferring fewer parts, whose amounts add up to exactly total.
// It returns nil when no combination does.
func FindSplitPayment(candidates []*AccountTransaction, total, maxParts int) []*AccountTransaction {
	if total <= 0 {
		return nil
	}
	for parts := 1; parts <= min(maxParts, len(candidates)); parts++ {
		if combo := findCombination(candidates, total, parts, 0, nil); combo != nil {
			return combo
		}
	}
	return nil
}

// findCombination walks index combinations in lexicographic order.
func findCombination(candidates []*AccountTransaction, remaining, parts, from int, picked []*AccountTransaction) []*AccountTransaction {
	if parts == 0 {
		if remaining == 0 {
			return append([]*AccountTransaction(nil), picked...)
		}
		return nil
	}
	for i := from; i <= len(candidates)-parts; i++ {
		if combo := findCombination(candidates, remaining-candidates[i].Amount, parts-1, i+1, append(picked, candidates[i])); combo != nil {
			return combo
		}
	}
	return nil
}

// DepositRepository defines storage for account transactions.
type DepositRepository interface {
	Create(ctx context.Context, t *AccountTransaction) error
	List(ctx context.Context, filter ListFilter, params PaginationParams) ([]*AccountTransaction, int, error)
	// FindUnmatchedDeposit returns the oldest unmatched deposit by depositor for exactly amount on or after since.
	FindUnmatchedDeposit(ctx context.Context, depositorName string, amount int, since Date) (*AccountTransaction, error)
	// ListUnmatchedDeposits returns up to limit unmatched deposits by depositor on or after since,
	// oldest first.
	ListUnmatchedDeposits(ctx context.Context, depositorName string, since Date, limit int) ([]*AccountTransaction, error)
	// ConfirmMatch marks the transaction confirmed and links the reservations to it.
	ConfirmMatch(ctx context.Context, transactionID int64, reservationIDs []int64) error
}

// DepositService defines deposit use cases.
type DepositService interface {
	ListDeposits(ctx context.Context, filter ListFilter, params PaginationParams) ([]*AccountTransaction, int, error)
	RecordDeposit(ctx context.Context, t *AccountTransaction) error
	MatchPayments(ctx context.Context) (*MatchReport, error)
}
