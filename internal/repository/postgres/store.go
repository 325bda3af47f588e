package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pianostudio/internal/domain"
)

// dbExecutor is the part of *sql.DB and *sql.Tx the repositories use.
type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store opens transactions spanning the reservation, coupon and deposit tables.
type Store struct {
	DB *sql.DB
}

// NewStore returns a domain.Transactor backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) InTx(ctx context.Context, fn func(repos domain.TxRepositories) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// no-op once committed
	defer tx.Rollback() //nolint:errcheck

	if err := fn(domain.TxRepositories{
		Reservations: &reservationRepository{DB: tx},
		Coupons:      &couponRepository{DB: tx},
		Deposits:     &depositRepository{DB: tx},
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
