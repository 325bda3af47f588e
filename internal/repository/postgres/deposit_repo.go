package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pianostudio/internal/domain"

	"github.com/lib/pq"
)

const depositColumns = `id, transaction_id, transaction_date, transaction_time, transaction_type, amount, balance,
	depositor_name, memo, match_status, matched_reservation_ids, created_at`

type depositRepository struct {
	DB dbExecutor
}

// NewDepositRepository returns a domain.DepositRepository implemented with Postgres.
func NewDepositRepository(db *sql.DB) domain.DepositRepository {
	return &depositRepository{DB: db}
}

func scanDeposit(row rowScanner) (*domain.AccountTransaction, error) {
	t := &domain.AccountTransaction{}
	var memo sql.NullString
	err := row.Scan(
		&t.ID, &t.TransactionID, &t.TransactionDate, &t.TransactionTime, &t.TransactionType, &t.Amount, &t.Balance,
		&t.DepositorName, &memo, &t.MatchStatus, pq.Array(&t.MatchedReservationIDs), &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Memo = memo.String
	if t.MatchedReservationIDs == nil {
		t.MatchedReservationIDs = []int64{}
	}
	return t, nil
}

func (r *depositRepository) Create(ctx context.Context, t *domain.AccountTransaction) error {
	query := `
		INSERT INTO account_transactions (transaction_id, transaction_date, transaction_time, transaction_type,
			amount, balance, depositor_name, memo, match_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.TransactionID, t.TransactionDate, t.TransactionTime, t.TransactionType,
		t.Amount, t.Balance, t.DepositorName, t.Memo, t.MatchStatus, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %q: %w", t.TransactionID, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *depositRepository) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.AccountTransaction, int, error) {
	where := `WHERE ($1 = '' OR depositor_name ILIKE '%' || $1 || '%' OR memo ILIKE '%' || $1 || '%' OR transaction_id ILIKE '%' || $1 || '%')`

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM account_transactions `+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + depositColumns + ` FROM account_transactions ` + where +
		` ORDER BY transaction_date DESC, transaction_time DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, filter.Search, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*domain.AccountTransaction, 0)
	for rows.Next() {
		t, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *depositRepository) FindUnmatchedDeposit(ctx context.Context, depositorName string, amount int, since domain.Date) (*domain.AccountTransaction, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM account_transactions
		WHERE transaction_type = 'deposit'
		  AND match_status = 'unmatched'
		  AND depositor_name = $1
		  AND amount = $2
		  AND transaction_date >= $3
		ORDER BY transaction_date, transaction_time, id
		LIMIT 1
	`
	t, err := scanDeposit(r.DB.QueryRowContext(ctx, query, depositorName, amount, since))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *depositRepository) ListUnmatchedDeposits(ctx context.Context, depositorName string, since domain.Date, limit int) ([]*domain.AccountTransaction, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM account_transactions
		WHERE transaction_type = 'deposit'
		  AND match_status = 'unmatched'
		  AND depositor_name = $1
		  AND transaction_date >= $2
		ORDER BY transaction_date, transaction_time, id
		LIMIT $3
	`
	rows, err := r.DB.QueryContext(ctx, query, depositorName, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AccountTransaction
	for rows.Next() {
		t, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *depositRepository) ConfirmMatch(ctx context.Context, transactionID int64, reservationIDs []int64) error {
	query := `
		UPDATE account_transactions
		SET match_status = 'confirmed', matched_reservation_ids = $2
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, transactionID, pq.Array(reservationIDs))
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
