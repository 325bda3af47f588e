package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pianostudio/internal/domain"
)

const couponColumns = `id, customer_name, phone_number, piano_category, coupon_type, coupon_registered_at,
	coupon_expires_at, coupon_status, remaining_time, created_at, updated_at`

const historyColumns = `id, customer_id, reservation_id, customer_name, room_name, transaction_date,
	start_time, end_time, remaining_time, charged_or_used_time, transaction_type, reason, created_at`

type couponRepository struct {
	DB dbExecutor
}

// NewCouponRepository returns a domain.CouponRepository implemented with Postgres.
func NewCouponRepository(db *sql.DB) domain.CouponRepository {
	return &couponRepository{DB: db}
}

func scanCoupon(row rowScanner) (*domain.CouponCustomer, error) {
	c := &domain.CouponCustomer{}
	err := row.Scan(
		&c.ID, &c.CustomerName, &c.PhoneNumber, &c.PianoCategory, &c.CouponType, &c.RegisteredAt,
		&c.ExpiresAt, &c.Status, &c.RemainingMinutes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.RemainingLabel = domain.FormatMinutes(c.RemainingMinutes)
	return c, nil
}

func (r *couponRepository) Create(ctx context.Context, c *domain.CouponCustomer) error {
	query := `
		INSERT INTO coupon_customers (customer_name, phone_number, piano_category, coupon_type,
			coupon_registered_at, coupon_expires_at, coupon_status, remaining_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.CustomerName, c.PhoneNumber, c.PianoCategory, c.CouponType,
		c.RegisteredAt, c.ExpiresAt, c.Status, c.RemainingMinutes, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("coupon customer %s/%s: %w", c.PhoneNumber, c.PianoCategory, domain.ErrDuplicate)
		}
		return err
	}
	c.RemainingLabel = domain.FormatMinutes(c.RemainingMinutes)
	return nil
}

func (r *couponRepository) GetByID(ctx context.Context, id int64) (*domain.CouponCustomer, error) {
	query := `SELECT ` + couponColumns + ` FROM coupon_customers WHERE id = $1`
	c, err := scanCoupon(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *couponRepository) GetByPhoneAndCategory(ctx context.Context, phone, category string) (*domain.CouponCustomer, error) {
	query := `SELECT ` + couponColumns + ` FROM coupon_customers WHERE phone_number = $1 AND piano_category = $2`
	c, err := scanCoupon(r.DB.QueryRowContext(ctx, query, phone, category))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *couponRepository) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.CouponCustomer, int, error) {
	where := `WHERE ($1 = '' OR customer_name ILIKE '%' || $1 || '%' OR phone_number ILIKE '%' || $1 || '%')`

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM coupon_customers `+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + couponColumns + ` FROM coupon_customers ` + where + ` ORDER BY updated_at DESC, id DESC LIMIT $2 OFFSET $3`
	customers, err := r.query(ctx, query, filter.Search, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *couponRepository) ListActiveByCategory(ctx context.Context, category string) ([]*domain.CouponCustomer, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupon_customers
		WHERE piano_category = $1 AND coupon_status = 'active'
		ORDER BY id
	`
	return r.query(ctx, query, category)
}

func (r *couponRepository) query(ctx context.Context, query string, args ...any) ([]*domain.CouponCustomer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.CouponCustomer, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *couponRepository) Update(ctx context.Context, c *domain.CouponCustomer) error {
	query := `
		UPDATE coupon_customers
		SET customer_name = $2, phone_number = $3, coupon_type = $4, coupon_registered_at = $5,
			coupon_expires_at = $6, coupon_status = $7, remaining_time = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.ID, c.CustomerName, c.PhoneNumber, c.CouponType, c.RegisteredAt,
		c.ExpiresAt, c.Status, c.RemainingMinutes,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("coupon customer %s/%s: %w", c.PhoneNumber, c.PianoCategory, domain.ErrDuplicate)
		}
		return err
	}
	c.RemainingLabel = domain.FormatMinutes(c.RemainingMinutes)
	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM coupon_customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *couponRepository) ExpireBefore(ctx context.Context, today domain.Date) (int, error) {
	query := `
		UPDATE coupon_customers
		SET coupon_status = 'expired', updated_at = NOW()
		WHERE coupon_status = 'active' AND coupon_expires_at < $1
	`
	result, err := r.DB.ExecContext(ctx, query, today)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *couponRepository) CreateHistory(ctx context.Context, h *domain.CouponHistory) error {
	query := `
		INSERT INTO coupon_histories (customer_id, reservation_id, customer_name, room_name, transaction_date,
			start_time, end_time, remaining_time, charged_or_used_time, transaction_type, reason, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		h.CustomerID, h.ReservationID, h.CustomerName, h.RoomName, h.TransactionDate,
		h.StartTime, h.EndTime, h.RemainingMinutes, h.DeltaMinutes, h.TransactionType, h.Reason, h.CreatedAt,
	).Scan(&h.ID)
}

func (r *couponRepository) ListHistory(ctx context.Context, customerID int64) ([]*domain.CouponHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM coupon_histories
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.CouponHistory, 0)
	for rows.Next() {
		h := &domain.CouponHistory{}
		var reservationID sql.NullInt64
		var roomName, reason sql.NullString
		if err := rows.Scan(
			&h.ID, &h.CustomerID, &reservationID, &h.CustomerName, &roomName, &h.TransactionDate,
			&h.StartTime, &h.EndTime, &h.RemainingMinutes, &h.DeltaMinutes, &h.TransactionType, &reason, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		if reservationID.Valid {
			h.ReservationID = &reservationID.Int64
		}
		h.RoomName = roomName.String
		h.Reason = reason.String
		out = append(out, h)
	}
	return out, rows.Err()
}
