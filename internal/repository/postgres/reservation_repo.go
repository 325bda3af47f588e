package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pianostudio/internal/domain"

	"github.com/lib/pq"
)

const reservationColumns = `id, naver_booking_id, customer_name, phone_number, room_name, reservation_date,
	start_time, end_time, price, is_coupon, extra_people_qty, account_sms_status,
	complete_sms_status, reservation_status, created_at, updated_at`

type reservationRepository struct {
	DB dbExecutor
}

// NewReservationRepository returns a domain.ReservationRepository implemented with Postgres.
func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	r := &domain.Reservation{}
	var bookingID sql.NullString
	err := row.Scan(
		&r.ID, &bookingID, &r.CustomerName, &r.PhoneNumber, &r.RoomName, &r.ReservationDate,
		&r.StartTime, &r.EndTime, &r.Price, &r.IsCoupon, &r.ExtraPeopleQty, &r.AccountSMSStatus,
		&r.CompleteSMSStatus, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.BookingID = bookingID.String
	return r, nil
}

func isUniqueViolation(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == "23505"
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (naver_booking_id, customer_name, phone_number, room_name, reservation_date,
			start_time, end_time, price, is_coupon, extra_people_qty, account_sms_status,
			complete_sms_status, reservation_status, created_at, updated_at)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		res.BookingID, res.CustomerName, res.PhoneNumber, res.RoomName, res.ReservationDate,
		res.StartTime, res.EndTime, res.Price, res.IsCoupon, res.ExtraPeopleQty, res.AccountSMSStatus,
		res.CompleteSMSStatus, res.Status, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reservation %q: %w", res.BookingID, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	where := `WHERE ($1 = '' OR customer_name ILIKE '%' || $1 || '%' OR phone_number ILIKE '%' || $1 || '%')`

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations `+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	column, desc := domain.ReservationOrdering(filter.Ordering)
	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM reservations %s ORDER BY %s %s, id %s LIMIT $2 OFFSET $3`,
		reservationColumns, where, column, direction, direction)
	rows, err := r.DB.QueryContext(ctx, query, filter.Search, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *reservationRepository) ListActiveForSlot(ctx context.Context, roomName string, date domain.Date, excludeBookingID string) ([]*domain.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE room_name = $1
		  AND reservation_date = $2
		  AND reservation_status IN ('requested', 'confirmed')
		  AND ($3 = '' OR naver_booking_id IS DISTINCT FROM $3)
		ORDER BY start_time
	`
	return r.query(ctx, query, roomName, date, excludeBookingID)
}

func (r *reservationRepository) ListAwaitingDeposit(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE reservation_status = 'requested'
		  AND is_coupon = FALSE
		  AND account_sms_status = 'sent'
		ORDER BY created_at, id
	`
	return r.query(ctx, query)
}

func (r *reservationRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET price = $2, extra_people_qty = $3, account_sms_status = $4,
			complete_sms_status = $5, reservation_status = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		res.ID, res.Price, res.ExtraPeopleQty, res.AccountSMSStatus, res.CompleteSMSStatus, res.Status,
	).Scan(&res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
