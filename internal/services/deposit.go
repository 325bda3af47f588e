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

// SafeMode limits automatic matching to an allow-list of customer names while the
// automation is being trialled.
type SafeMode struct {
	Enabled          bool
	AllowedCustomers []string
}

// Allows reports whether automation may act for the customer.
func (m SafeMode) Allows(name string) bool {
	if !m.Enabled {
		return true
	}
	for _, allowed := range m.AllowedCustomers {
		if strings.TrimSpace(allowed) == strings.TrimSpace(name) {
			return true
		}
	}
	return false
}

// maxSplitCandidates bounds the deposits searched for a split payment.
const maxSplitCandidates = 20

type depositService struct {
	depositRepo     domain.DepositRepository
	reservationRepo domain.ReservationRepository
	tx              domain.Transactor
	messenger       *Messenger
	safeMode        SafeMode
	logger          *slog.Logger
	contextTimeout  time.Duration
	now             func() time.Time
}

// NewDepositService creates a DepositService. Matches are written through tx. A nil
// messenger skips confirmation SMS.
func NewDepositService(
	depositRepo domain.DepositRepository,
	reservationRepo domain.ReservationRepository,
	tx domain.Transactor,
	messenger *Messenger,
	safeMode SafeMode,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DepositService {
	return &depositService{
		depositRepo:     depositRepo,
		reservationRepo: reservationRepo,
		tx:              tx,
		messenger:       messenger,
		safeMode:        safeMode,
		logger:          logger,
		contextTimeout:  timeout,
		now:             time.Now,
	}
}

func (s *depositService) ListDeposits(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.AccountTransaction, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.depositRepo.List(ctx, filter, params)
}

// RecordDeposit stores a bank transaction entered by hand. Blank ids become MANUAL_<timestamp>.
func (s *depositService) RecordDeposit(ctx context.Context, t *domain.AccountTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	t.TransactionID = strings.TrimSpace(t.TransactionID)
	if t.TransactionID == "" {
		t.TransactionID = "MANUAL_" + now.Format("20060102150405")
	}
	if t.TransactionType == "" {
		t.TransactionType = domain.TransactionDeposit
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = domain.NewDate(now)
	}
	if !t.TransactionTime.Valid {
		t.TransactionTime = domain.NewClock(now.Hour(), now.Minute())
	}
	t.DepositorName = strings.TrimSpace(t.DepositorName)

	var errs []string
	if t.TransactionType != domain.TransactionDeposit && t.TransactionType != domain.TransactionWithdrawal {
		errs = append(errs, "transaction_type must be deposit or withdrawal")
	}
	if t.Amount <= 0 {
		errs = append(errs, "amount must be > 0")
	}
	if t.DepositorName == "" {
		errs = append(errs, "depositor_name is required")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}

	t.MatchStatus = domain.MatchUnmatched
	t.MatchedReservationIDs = []int64{}
	t.CreatedAt = now
	if err := s.depositRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("record deposit: %w", err)
	}
	return nil
}

// groupByPhone keeps the first-seen order of phone numbers.
func groupByPhone(reservations []*domain.Reservation) [][]*domain.Reservation {
	index := make(map[string]int)
	var groups [][]*domain.Reservation
	for _, r := range reservations {
		key := domain.DigitsOnly(r.PhoneNumber)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// MatchPayments confirms reservations that have been paid for. Reservations awaiting payment
// are grouped by phone number; a group is confirmed by one unmatched deposit from the customer
// for exactly the group total or, failing that, by up to MaxSplitDeposits of them adding up to
// it. Deposits made before the group's first booking never count.
func (s *depositService) MatchPayments(ctx context.Context) (*domain.MatchReport, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	pending, err := s.reservationRepo.ListAwaitingDeposit(listCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("list pending reservations: %w", err)
	}

	allowed := make([]*domain.Reservation, 0, len(pending))
	for _, r := range pending {
		if s.safeMode.Allows(r.CustomerName) {
			allowed = append(allowed, r)
		}
	}

	report := &domain.MatchReport{}
	for _, group := range groupByPhone(allowed) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Groups++
		matched, err := s.matchGroup(ctx, group)
		if err != nil {
			return report, err
		}
		if matched {
			report.Confirmed += len(group)
		} else {
			report.Skipped++
		}
	}
	return report, nil
}

// findPayment prefers a single deposit and falls back to a split payment.
func (s *depositService) findPayment(ctx context.Context, name string, total int, since domain.Date) ([]*domain.AccountTransaction, error) {
	single, err := s.depositRepo.FindUnmatchedDeposit(ctx, name, total, since)
	if err == nil {
		return []*domain.AccountTransaction{single}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	candidates, err := s.depositRepo.ListUnmatchedDeposits(ctx, name, since, maxSplitCandidates)
	if err != nil {
		return nil, err
	}
	return domain.FindSplitPayment(candidates, total, domain.MaxSplitDeposits), nil
}

func (s *depositService) matchGroup(ctx context.Context, group []*domain.Reservation) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total := 0
	earliest := group[0].CreatedAt
	ids := make([]int64, 0, len(group))
	for _, r := range group {
		total += r.Price
		if r.CreatedAt.Before(earliest) {
			earliest = r.CreatedAt
		}
		ids = append(ids, r.ID)
	}
	name := group[0].CustomerName

	paidWith, err := s.findPayment(ctx, name, total, domain.NewDate(earliest))
	if err != nil {
		return false, fmt.Errorf("find deposit for %s: %w", name, err)
	}
	if len(paidWith) == 0 {
		s.logger.DebugContext(ctx, "no matching deposit", "customer", name, "amount", total)
		return false, nil
	}

	prevStatus := make([]string, len(group))
	for i, r := range group {
		prevStatus[i] = r.Status
	}
	err = s.tx.InTx(ctx, func(repos domain.TxRepositories) error {
		for _, d := range paidWith {
			if err := repos.Deposits.ConfirmMatch(ctx, d.ID, ids); err != nil {
				return fmt.Errorf("confirm deposit %s: %w", d.TransactionID, err)
			}
		}
		for _, r := range group {
			r.Status = domain.ReservationConfirmed
			if err := repos.Reservations.Update(ctx, r); err != nil {
				return fmt.Errorf("confirm reservation %d: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		for i, r := range group {
			r.Status = prevStatus[i]
		}
		return false, err
	}
	for _, d := range paidWith {
		d.MatchStatus = domain.MatchConfirmed
		d.MatchedReservationIDs = ids
	}

	transactionIDs := make([]string, len(paidWith))
	for i, d := range paidWith {
		transactionIDs[i] = d.TransactionID
	}
	s.logger.InfoContext(ctx, "deposit matched",
		"transaction_ids", transactionIDs, "customer", name, "amount", total, "reservations", len(group))

	if s.messenger != nil {
		for _, r := range group {
			s.sendConfirmation(ctx, r)
		}
	}
	return true, nil
}

// sendConfirmation runs after the match is committed; a failed SMS only shows up in the
// reservation's SMS status.
func (s *depositService) sendConfirmation(ctx context.Context, r *domain.Reservation) {
	r.CompleteSMSStatus = domain.SMSSent
	if err := s.messenger.SendTemplate(ctx, domain.TemplateConfirmation, r, nil); err != nil {
		s.logger.WarnContext(ctx, "confirmation sms failed", "reservation_id", r.ID, "err", err)
		r.CompleteSMSStatus = domain.SMSFailed
	}
	if err := s.reservationRepo.Update(ctx, r); err != nil {
		s.logger.ErrorContext(ctx, "record sms status", "reservation_id", r.ID, "err", err)
	}
}
