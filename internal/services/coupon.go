package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pianostudio/internal/domain"
)

type couponService struct {
	couponRepo     domain.CouponRepository
	tx             domain.Transactor
	messenger      *Messenger
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewCouponService creates a CouponService. A balance change and its history row are written
// through tx together. messenger is required for SendBulkSMS only.
func NewCouponService(couponRepo domain.CouponRepository, tx domain.Transactor, messenger *Messenger, logger *slog.Logger, timeout time.Duration) domain.CouponService {
	return &couponService{
		couponRepo:     couponRepo,
		tx:             tx,
		messenger:      messenger,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *couponService) ListCustomers(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.CouponCustomer, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.couponRepo.List(ctx, filter, params)
}

func validateCharge(req domain.ChargeRequest) error {
	var errs []string
	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, "customer_name is required")
	}
	if domain.DigitsOnly(req.PhoneNumber) == "" {
		errs = append(errs, "phone_number is required")
	}
	if !domain.ValidCategory(req.PianoCategory) {
		errs = append(errs, "piano_category must be domestic or import")
	}
	if _, ok := domain.CouponValidityMonths(req.CouponType); !ok {
		errs = append(errs, "coupon_type must be 10, 20, 50 or 100")
	}
	if req.ChargedMinutes < 0 {
		errs = append(errs, "charged_minutes must be >= 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// RegisterOrCharge creates the (phone, category) customer if needed, renews the coupon and adds the charged minutes.
func (s *couponService) RegisterOrCharge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateCharge(req); err != nil {
		return nil, err
	}
	phone := domain.FormatPhone(req.PhoneNumber)
	now := s.now()
	today := domain.NewDate(now)

	customer, err := s.couponRepo.GetByPhoneAndCategory(ctx, phone, req.PianoCategory)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		customer = &domain.CouponCustomer{
			PhoneNumber:   phone,
			PianoCategory: req.PianoCategory,
			CreatedAt:     now,
		}
	}
	customer.CustomerName = strings.TrimSpace(req.CustomerName)
	if err := customer.Charge(req.CouponType, req.ChargedMinutes, today); err != nil {
		return nil, err
	}
	customer.UpdatedAt = now

	result := &domain.ChargeResult{Customer: customer, IsNewCustomer: isNew}
	err = s.tx.InTx(ctx, func(repos domain.TxRepositories) error {
		save := repos.Coupons.Update
		if isNew {
			save = repos.Coupons.Create
		}
		if err := save(ctx, customer); err != nil {
			return fmt.Errorf("save coupon customer: %w", err)
		}
		if req.ChargedMinutes == 0 {
			return nil
		}
		h := &domain.CouponHistory{
			CustomerID:       customer.ID,
			CustomerName:     customer.CustomerName,
			TransactionDate:  today,
			RemainingMinutes: customer.RemainingMinutes,
			DeltaMinutes:     req.ChargedMinutes,
			TransactionType:  domain.HistoryCharge,
			CreatedAt:        now,
		}
		if err := repos.Coupons.CreateHistory(ctx, h); err != nil {
			return fmt.Errorf("record charge: %w", err)
		}
		result.History = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCustomer applies a staff edit. A balance change is recorded as a manual history entry
// with the delta; any other change as an edit entry with delta 0.
func (s *couponService) UpdateCustomer(ctx context.Context, id int64, update domain.CouponCustomerUpdate) (*domain.CouponCustomer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := domain.NewDate(now)

	changed := false
	if update.CustomerName != nil && strings.TrimSpace(*update.CustomerName) != c.CustomerName {
		name := strings.TrimSpace(*update.CustomerName)
		if name == "" {
			return nil, fmt.Errorf("%w: customer_name must not be empty", domain.ErrInvalidInput)
		}
		c.CustomerName = name
		changed = true
	}
	if update.PhoneNumber != nil {
		phone := domain.FormatPhone(*update.PhoneNumber)
		if phone == "" {
			return nil, fmt.Errorf("%w: phone_number must not be empty", domain.ErrInvalidInput)
		}
		if phone != c.PhoneNumber {
			c.PhoneNumber = phone
			changed = true
		}
	}
	if update.ExpiresAt != nil && !update.ExpiresAt.Equal(c.ExpiresAt.Time) {
		c.ExpiresAt = *update.ExpiresAt
		if c.ExpiresAt.Before(today) {
			c.Status = domain.CouponExpired
		} else {
			c.Status = domain.CouponActive
		}
		changed = true
	}
	delta := 0
	if update.RemainingMinutes != nil && *update.RemainingMinutes != c.RemainingMinutes {
		delta = *update.RemainingMinutes - c.RemainingMinutes
		c.RemainingMinutes = *update.RemainingMinutes
		changed = true
	}
	if !changed {
		return c, nil
	}

	c.UpdatedAt = now
	historyType := domain.HistoryEdit
	if delta != 0 {
		historyType = domain.HistoryManual
	}
	h := &domain.CouponHistory{
		CustomerID:       c.ID,
		CustomerName:     c.CustomerName,
		TransactionDate:  today,
		RemainingMinutes: c.RemainingMinutes,
		DeltaMinutes:     delta,
		TransactionType:  historyType,
		Reason:           strings.TrimSpace(update.Reason),
		CreatedAt:        now,
	}
	err = s.tx.InTx(ctx, func(repos domain.TxRepositories) error {
		if err := repos.Coupons.Update(ctx, c); err != nil {
			return fmt.Errorf("update coupon customer: %w", err)
		}
		if err := repos.Coupons.CreateHistory(ctx, h); err != nil {
			return fmt.Errorf("record %s history: %w", historyType, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *couponService) GetHistory(ctx context.Context, id int64) (*domain.CouponCustomer, []*domain.CouponHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	histories, err := s.couponRepo.ListHistory(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list coupon history: %w", err)
	}
	return c, histories, nil
}

func (s *couponService) DeleteCustomer(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.couponRepo.Delete(ctx, id)
}

// SendBulkSMS sends message to every active customer of category. The message may use
// {customer_name}, {remaining_time} and {expires_at}.
func (s *couponService) SendBulkSMS(ctx context.Context, category, message string) (*domain.BulkSMSResult, error) {
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: category must be domestic or import", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if s.messenger == nil {
		return nil, fmt.Errorf("bulk sms: messenger not configured")
	}

	listCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	customers, err := s.couponRepo.ListActiveByCategory(listCtx, category)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("list coupon customers: %w", err)
	}

	result := &domain.BulkSMSResult{Failed: []string{}}
	for _, c := range customers {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		body := domain.RenderTemplate(message, map[string]any{
			"customer_name":  c.CustomerName,
			"remaining_time": domain.FormatMinutes(c.RemainingMinutes),
			"expires_at":     c.ExpiresAt.String(),
		})
		if err := s.messenger.SendText(ctx, c.PhoneNumber, body); err != nil {
			s.logger.WarnContext(ctx, "bulk sms failed", "customer_id", c.ID, "err", err)
			result.Failed = append(result.Failed, c.PhoneNumber)
			continue
		}
		result.Sent++
	}
	return result, nil
}

// ExpireCoupons marks every coupon whose expiry date has passed as expired.
func (s *couponService) ExpireCoupons(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.couponRepo.ExpireBefore(ctx, domain.NewDate(s.now()))
	if err != nil {
		return 0, fmt.Errorf("expire coupons: %w", err)
	}
	return n, nil
}
