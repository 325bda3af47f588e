package services

import (
	"context"
	"errors"
	"testing"

	"pianostudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCouponService(repo *fakeCouponRepo, messenger *Messenger) *couponService {
	tx := &fakeTransactor{repos: domain.TxRepositories{Coupons: repo}}
	svc := NewCouponService(repo, tx, messenger, testLogger, testTimeout).(*couponService)
	svc.now = fixedNow
	return svc
}

func TestCouponService_RegisterOrCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("new customer", func(t *testing.T) {
		repo := newFakeCouponRepo()
		svc := newTestCouponService(repo, nil)

		res, err := svc.RegisterOrCharge(ctx, domain.ChargeRequest{
			CustomerName:   " Kim ",
			PhoneNumber:    "01012345678",
			PianoCategory:  domain.CategoryDomestic,
			CouponType:     20,
			ChargedMinutes: 1200,
		})
		require.NoError(t, err)
		assert.True(t, res.IsNewCustomer)
		assert.Equal(t, "Kim", res.Customer.CustomerName)
		assert.Equal(t, "010-1234-5678", res.Customer.PhoneNumber)
		assert.Equal(t, 1200, res.Customer.RemainingMinutes)
		assert.Equal(t, "2025-07-10", res.Customer.ExpiresAt.String())
		assert.Equal(t, domain.CouponActive, res.Customer.Status)

		require.NotNil(t, res.History)
		assert.Equal(t, domain.HistoryCharge, res.History.TransactionType)
		assert.Equal(t, 1200, res.History.DeltaMinutes)
		assert.Equal(t, res.Customer.ID, res.History.CustomerID)
	})

	t.Run("existing customer is topped up and renewed", func(t *testing.T) {
		existing := &domain.CouponCustomer{
			CustomerName:     "Kim",
			PhoneNumber:      "010-1234-5678",
			PianoCategory:    domain.CategoryImport,
			CouponType:       10,
			ExpiresAt:        mustDate("2025-04-01"),
			Status:           domain.CouponExpired,
			RemainingMinutes: 90,
		}
		repo := newFakeCouponRepo(existing)
		svc := newTestCouponService(repo, nil)

		res, err := svc.RegisterOrCharge(ctx, domain.ChargeRequest{
			CustomerName:   "Kim",
			PhoneNumber:    "010 1234 5678",
			PianoCategory:  domain.CategoryImport,
			CouponType:     10,
			ChargedMinutes: 600,
		})
		require.NoError(t, err)
		assert.False(t, res.IsNewCustomer)
		assert.Equal(t, existing.ID, res.Customer.ID)
		assert.Equal(t, 690, res.Customer.RemainingMinutes)
		assert.Equal(t, domain.CouponActive, res.Customer.Status)
		assert.Equal(t, "2025-06-10", res.Customer.ExpiresAt.String())
		assert.Len(t, repo.histories, 1)
	})

	t.Run("zero minutes renews without history", func(t *testing.T) {
		repo := newFakeCouponRepo()
		svc := newTestCouponService(repo, nil)

		res, err := svc.RegisterOrCharge(ctx, domain.ChargeRequest{
			CustomerName:  "Lee",
			PhoneNumber:   "01099998888",
			PianoCategory: domain.CategoryDomestic,
			CouponType:    100,
		})
		require.NoError(t, err)
		assert.Nil(t, res.History)
		assert.Empty(t, repo.histories)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc := newTestCouponService(newFakeCouponRepo(), nil)
		_, err := svc.RegisterOrCharge(ctx, domain.ChargeRequest{
			PhoneNumber:    "010",
			PianoCategory:  "grand",
			CouponType:     30,
			ChargedMinutes: -1,
		})
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
		for _, msg := range []string{"customer_name", "piano_category", "coupon_type", "charged_minutes"} {
			assert.Contains(t, err.Error(), msg)
		}
	})
}

func TestCouponService_UpdateCustomer(t *testing.T) {
	ctx := context.Background()
	newCustomer := func() *domain.CouponCustomer {
		return &domain.CouponCustomer{
			CustomerName:     "Kim",
			PhoneNumber:      "010-1234-5678",
			PianoCategory:    domain.CategoryDomestic,
			CouponType:       10,
			ExpiresAt:        mustDate("2025-06-01"),
			Status:           domain.CouponActive,
			RemainingMinutes: 300,
		}
	}

	t.Run("balance change is a manual entry with delta", func(t *testing.T) {
		c := newCustomer()
		repo := newFakeCouponRepo(c)
		svc := newTestCouponService(repo, nil)

		remaining := 240
		got, err := svc.UpdateCustomer(ctx, c.ID, domain.CouponCustomerUpdate{RemainingMinutes: &remaining, Reason: "refund of no-show"})
		require.NoError(t, err)
		assert.Equal(t, 240, got.RemainingMinutes)

		require.Len(t, repo.histories, 1)
		h := repo.histories[0]
		assert.Equal(t, domain.HistoryManual, h.TransactionType)
		assert.Equal(t, -60, h.DeltaMinutes)
		assert.Equal(t, 240, h.RemainingMinutes)
		assert.Equal(t, "refund of no-show", h.Reason)
	})

	t.Run("other edits are recorded with zero delta", func(t *testing.T) {
		c := newCustomer()
		repo := newFakeCouponRepo(c)
		svc := newTestCouponService(repo, nil)

		name := "Kim Minji"
		expires := mustDate("2025-05-01")
		got, err := svc.UpdateCustomer(ctx, c.ID, domain.CouponCustomerUpdate{CustomerName: &name, ExpiresAt: &expires})
		require.NoError(t, err)
		assert.Equal(t, "Kim Minji", got.CustomerName)
		assert.Equal(t, domain.CouponExpired, got.Status)

		require.Len(t, repo.histories, 1)
		assert.Equal(t, domain.HistoryEdit, repo.histories[0].TransactionType)
		assert.Zero(t, repo.histories[0].DeltaMinutes)
	})

	t.Run("no change writes nothing", func(t *testing.T) {
		c := newCustomer()
		repo := newFakeCouponRepo(c)
		svc := newTestCouponService(repo, nil)

		same := 300
		_, err := svc.UpdateCustomer(ctx, c.ID, domain.CouponCustomerUpdate{RemainingMinutes: &same})
		require.NoError(t, err)
		assert.Empty(t, repo.histories)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestCouponService(newFakeCouponRepo(), nil)
		_, err := svc.UpdateCustomer(ctx, 42, domain.CouponCustomerUpdate{})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCouponService_GetHistory(t *testing.T) {
	c := &domain.CouponCustomer{CustomerName: "Kim", PhoneNumber: "010-1234-5678", PianoCategory: domain.CategoryDomestic}
	repo := newFakeCouponRepo(c)
	repo.histories = []*domain.CouponHistory{
		{ID: 1, CustomerID: c.ID, TransactionType: domain.HistoryCharge},
		{ID: 2, CustomerID: c.ID + 1, TransactionType: domain.HistoryCharge},
		{ID: 3, CustomerID: c.ID, TransactionType: domain.HistoryUse},
	}
	svc := newTestCouponService(repo, nil)

	got, histories, err := svc.GetHistory(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	require.Len(t, histories, 2)
	assert.Equal(t, int64(3), histories[0].ID)
	assert.Equal(t, int64(1), histories[1].ID)
}

func TestCouponService_SendBulkSMS(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCouponRepo(
		&domain.CouponCustomer{CustomerName: "Kim", PhoneNumber: "010-1111-1111", PianoCategory: domain.CategoryDomestic, Status: domain.CouponActive, RemainingMinutes: 90, ExpiresAt: mustDate("2025-06-01")},
		&domain.CouponCustomer{CustomerName: "Lee", PhoneNumber: "010-2222-2222", PianoCategory: domain.CategoryDomestic, Status: domain.CouponActive, RemainingMinutes: 60},
		&domain.CouponCustomer{CustomerName: "Park", PhoneNumber: "010-3333-3333", PianoCategory: domain.CategoryDomestic, Status: domain.CouponExpired},
		&domain.CouponCustomer{CustomerName: "Choi", PhoneNumber: "010-4444-4444", PianoCategory: domain.CategoryImport, Status: domain.CouponActive},
	)
	sender := &fakeSMSSender{failTo: map[string]bool{"010-2222-2222": true}}
	svc := newTestCouponService(repo, NewMessenger(nil, sender, false, testLogger))

	res, err := svc.SendBulkSMS(ctx, domain.CategoryDomestic, "{customer_name}님 잔여 {remaining_time}, 만료 {expires_at}")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, []string{"010-2222-2222"}, res.Failed)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "010-1111-1111", sender.sent[0].to)
	assert.Equal(t, "Kim님 잔여 1시간 30분, 만료 2025-06-01", sender.sent[0].message)
}

func TestCouponService_SendBulkSMS_Validation(t *testing.T) {
	svc := newTestCouponService(newFakeCouponRepo(), NewMessenger(nil, &fakeSMSSender{}, false, testLogger))

	_, err := svc.SendBulkSMS(context.Background(), "grand", "hello")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = svc.SendBulkSMS(context.Background(), domain.CategoryImport, "  ")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCouponService_ExpireCoupons(t *testing.T) {
	repo := newFakeCouponRepo(
		&domain.CouponCustomer{Status: domain.CouponActive, ExpiresAt: mustDate("2025-05-09")},
		&domain.CouponCustomer{Status: domain.CouponActive, ExpiresAt: mustDate("2025-05-10")},
		&domain.CouponCustomer{Status: domain.CouponExpired, ExpiresAt: mustDate("2025-01-01")},
	)
	svc := newTestCouponService(repo, nil)

	n, err := svc.ExpireCoupons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "2025-05-10", repo.expiredOn.String())
}

func TestCouponService_RegisterOrCharge_HistoryFailureRollsBack(t *testing.T) {
	repo := newFakeCouponRepo()
	repo.historyErr = errors.New("connection reset")
	svc := newTestCouponService(repo, nil)

	res, err := svc.RegisterOrCharge(context.Background(), domain.ChargeRequest{
		CustomerName:   "Kim",
		PhoneNumber:    "01012345678",
		PianoCategory:  domain.CategoryDomestic,
		CouponType:     10,
		ChargedMinutes: 600,
	})
	require.ErrorContains(t, err, "record charge")
	assert.Nil(t, res)
	tx := svc.tx.(*fakeTransactor)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}
