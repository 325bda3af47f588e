package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pianostudio/internal/domain"
)

type reservationService struct {
	reservationRepo domain.ReservationRepository
	couponRepo      domain.CouponRepository
	tx              domain.Transactor
	notifier        domain.NotificationService
	messenger       *Messenger
	logger          *slog.Logger
	contextTimeout  time.Duration
	now             func() time.Time
}

// NewReservationService creates a ReservationService. Coupon confirmations are written
// through tx. notifier and messenger may be nil.
func NewReservationService(
	reservationRepo domain.ReservationRepository,
	couponRepo domain.CouponRepository,
	tx domain.Transactor,
	notifier domain.NotificationService,
	messenger *Messenger,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		couponRepo:      couponRepo,
		tx:              tx,
		notifier:        notifier,
		messenger:       messenger,
		logger:          logger,
		contextTimeout:  timeout,
		now:             time.Now,
	}
}

func (s *reservationService) ListReservations(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.reservationRepo.List(ctx, filter, params)
}

func (s *reservationService) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) CreateReservation(ctx context.Context, r *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	r.ApplyDefaults()
	r.PhoneNumber = domain.FormatPhone(r.PhoneNumber)
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Active() {
		if err := s.checkConflict(ctx, r); err != nil {
			return err
		}
	}

	now := s.now()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.reservationRepo.Create(ctx, r); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewReservation(ctx, r); err != nil {
			s.logger.WarnContext(ctx, "owner notification failed", "reservation_id", r.ID, "err", err)
		}
	}
	return nil
}

// checkConflict returns ErrConflict when an active booking in the same room overlaps r.
func (s *reservationService) checkConflict(ctx context.Context, r *domain.Reservation) error {
	existing, err := s.reservationRepo.ListActiveForSlot(ctx, r.RoomName, r.ReservationDate, r.BookingID)
	if err != nil {
		return fmt.Errorf("check conflicts: %w", err)
	}
	for _, other := range existing {
		if other.ID == r.ID {
			continue
		}
		if r.Overlaps(other) {
			return fmt.Errorf("%w: %s is booked %s~%s on %s", domain.ErrConflict,
				other.RoomName, other.StartTime, other.EndTime, other.ReservationDate)
		}
	}
	return nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, id int64, update domain.ReservationUpdate) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasActive := r.Active()
	update.Apply(r)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if !wasActive && r.Active() {
		if err := s.checkConflict(ctx, r); err != nil {
			return nil, err
		}
	}
	if err := s.reservationRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	return r, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.reservationRepo.Delete(ctx, id)
}

func (s *reservationService) ConfirmCouponReservation(ctx context.Context, id int64) (*domain.Reservation, *domain.CouponCustomer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !r.IsCoupon {
		return nil, nil, fmt.Errorf("%w: reservation %d is not a coupon booking", domain.ErrInvalidInput, id)
	}
	switch r.Status {
	case domain.ReservationConfirmed:
		return nil, nil, fmt.Errorf("%w: reservation %d is already confirmed", domain.ErrConflict, id)
	case domain.ReservationCancelled:
		return nil, nil, fmt.Errorf("%w: reservation %d is cancelled", domain.ErrInvalidInput, id)
	}

	category := domain.RoomCategory(r.RoomName)
	customer, err := s.couponRepo.GetByPhoneAndCategory(ctx, r.PhoneNumber, category)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, s.missingCouponError(ctx, r, category)
	}
	if err != nil {
		return nil, nil, err
	}

	today := domain.NewDate(s.now())
	if customer.RefreshExpiry(today) {
		if err := s.couponRepo.Update(ctx, customer); err != nil {
			return nil, nil, fmt.Errorf("expire coupon: %w", err)
		}
	}
	if customer.IsExpired(today) {
		return nil, nil, fmt.Errorf("%w: expired on %s", domain.ErrCouponExpired, customer.ExpiresAt)
	}

	need := r.DurationMinutes()
	if customer.RemainingMinutes < need {
		return nil, nil, fmt.Errorf("%w: remaining %s, required %s", domain.ErrInsufficientBalance,
			domain.FormatMinutes(customer.RemainingMinutes), domain.FormatMinutes(need))
	}

	customer.RemainingMinutes -= need
	reservationID := r.ID
	history := &domain.CouponHistory{
		CustomerID:       customer.ID,
		ReservationID:    &reservationID,
		CustomerName:     customer.CustomerName,
		RoomName:         r.RoomName,
		TransactionDate:  r.ReservationDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		RemainingMinutes: customer.RemainingMinutes,
		DeltaMinutes:     -need,
		TransactionType:  domain.HistoryUse,
		CreatedAt:        s.now(),
	}
	prevStatus, prevSMS := r.Status, r.CompleteSMSStatus
	// The completion message counts as sent once the booking is confirmed; a failed
	// delivery below downgrades it.
	err = s.tx.InTx(ctx, func(repos domain.TxRepositories) error {
		if err := repos.Coupons.Update(ctx, customer); err != nil {
			return fmt.Errorf("deduct coupon: %w", err)
		}
		if err := repos.Coupons.CreateHistory(ctx, history); err != nil {
			return fmt.Errorf("record coupon use: %w", err)
		}
		r.Status = domain.ReservationConfirmed
		r.CompleteSMSStatus = domain.SMSSent
		if err := repos.Reservations.Update(ctx, r); err != nil {
			return fmt.Errorf("confirm reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		customer.RemainingMinutes += need
		r.Status, r.CompleteSMSStatus = prevStatus, prevSMS
		return nil, nil, err
	}

	if s.messenger != nil {
		extra := map[string]any{"remaining_minutes": customer.RemainingMinutes}
		if err := s.messenger.SendTemplate(ctx, domain.TemplateConfirmation, r, extra); err != nil {
			s.logger.WarnContext(ctx, "confirmation sms failed", "reservation_id", r.ID, "err", err)
			r.CompleteSMSStatus = domain.SMSFailed
			if err := s.reservationRepo.Update(ctx, r); err != nil {
				s.logger.ErrorContext(ctx, "record sms status", "reservation_id", r.ID, "err", err)
			}
		}
	}
	return r, customer, nil
}

// missingCouponError distinguishes a customer holding the other category from no customer at all.
func (s *reservationService) missingCouponError(ctx context.Context, r *domain.Reservation, category string) error {
	other := domain.CategoryImport
	if category == domain.CategoryImport {
		other = domain.CategoryDomestic
	}
	if _, err := s.couponRepo.GetByPhoneAndCategory(ctx, r.PhoneNumber, other); err == nil {
		return fmt.Errorf("%w: customer holds a %s coupon, room %s is %s", domain.ErrCategoryMismatch, other, r.RoomName, category)
	}
	return fmt.Errorf("coupon customer %s (%s): %w", r.PhoneNumber, category, domain.ErrNotFound)
}
