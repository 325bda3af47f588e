package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"pianostudio/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var couponRowColumns = []string{
	"id", "customer_name", "phone_number", "piano_category", "coupon_type", "coupon_registered_at",
	"coupon_expires_at", "coupon_status", "remaining_time", "created_at", "updated_at",
}

func TestCouponRepository_GetByPhoneAndCategory(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM coupon_customers WHERE phone_number = \$1 AND piano_category = \$2`).
					WithArgs("01012345678", "import").
					WillReturnRows(sqlmock.NewRows(couponRowColumns).
						AddRow(1, "Kim", "01012345678", "import", 20, "2025-01-10", "2025-03-10", "active", 90, ts, ts))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM coupon_customers WHERE phone_number`).
					WithArgs("01012345678", "import").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewCouponRepository(db).GetByPhoneAndCategory(ctx, "01012345678", "import")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), got.ID)
			require.Equal(t, "2025-03-10", got.ExpiresAt.String())
			require.Equal(t, 90, got.RemainingMinutes)
			require.Equal(t, "1시간 30분", got.RemainingLabel)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCouponRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	registered := mustParseDate(t, "2025-01-10")

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO coupon_customers`).
					WithArgs("Kim", "01012345678", "domestic", 10, "2025-01-10", "2025-02-10", "active", 600, ts, ts).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
			},
		},
		{
			name: "duplicate phone and category",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO coupon_customers`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			c := &domain.CouponCustomer{
				CustomerName:     "Kim",
				PhoneNumber:      "01012345678",
				PianoCategory:    domain.CategoryDomestic,
				CouponType:       10,
				RegisteredAt:     registered,
				ExpiresAt:        registered.AddMonths(1),
				Status:           domain.CouponActive,
				RemainingMinutes: 600,
				CreatedAt:        ts,
				UpdatedAt:        ts,
			}
			err = NewCouponRepository(db).Create(ctx, c)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(3), c.ID)
			require.Equal(t, "10시간", c.RemainingLabel)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCouponRepository_ExpireBefore(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE coupon_customers\s+SET coupon_status = 'expired'`).
		WithArgs("2025-04-01").
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewCouponRepository(db).ExpireBefore(ctx, mustParseDate(t, "2025-04-01"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_History(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reservationID := int64(42)
	h := &domain.CouponHistory{
		CustomerID:       1,
		ReservationID:    &reservationID,
		CustomerName:     "Kim",
		RoomName:         "Room A",
		TransactionDate:  mustParseDate(t, "2025-01-10"),
		StartTime:        domain.NewClock(10, 0),
		EndTime:          domain.NewClock(11, 0),
		RemainingMinutes: 540,
		DeltaMinutes:     -60,
		TransactionType:  domain.HistoryUse,
		CreatedAt:        ts,
	}

	mock.ExpectQuery(`INSERT INTO coupon_histories`).
		WithArgs(1, 42, "Kim", "Room A", "2025-01-10", "10:00:00", "11:00:00", 540, -60, "use", "", ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`FROM coupon_histories`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "reservation_id", "customer_name", "room_name", "transaction_date",
			"start_time", "end_time", "remaining_time", "charged_or_used_time", "transaction_type", "reason", "created_at",
		}).
			AddRow(11, 1, 42, "Kim", "Room A", "2025-01-10", "10:00:00", "11:00:00", 540, -60, "use", nil, ts).
			AddRow(10, 1, nil, "Kim", nil, "2025-01-09", nil, nil, 600, 600, "charge", nil, ts))

	repo := NewCouponRepository(db)
	require.NoError(t, repo.CreateHistory(ctx, h))
	require.Equal(t, int64(11), h.ID)

	got, err := repo.ListHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(42), *got[0].ReservationID)
	require.Equal(t, "2025-01-10 10:00 ~ 11:00", got[0].UsageWindow())
	require.Nil(t, got[1].ReservationID)
	require.Equal(t, "-", got[1].UsageWindow())
	require.NoError(t, mock.ExpectationsWereMet())
}
