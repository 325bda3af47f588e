package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"pianostudio/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testTimeout = 5 * time.Second

func fixedNow() time.Time {
	return time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeReservationRepo is an in-memory ReservationRepository.
type fakeReservationRepo struct {
	byID    map[int64]*domain.Reservation
	nextID  int64
	updates int
	err     error // if set, Create returns this error
}

func newFakeReservationRepo(rs ...*domain.Reservation) *fakeReservationRepo {
	f := &fakeReservationRepo{byID: make(map[int64]*domain.Reservation), nextID: 1}
	for _, r := range rs {
		if r.ID == 0 {
			r.ID = f.nextID
		}
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeReservationRepo) sorted() []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	if f.err != nil {
		return f.err
	}
	r.ID = f.nextID
	f.nextID++
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	var all []*domain.Reservation
	for _, r := range f.sorted() {
		if filter.Search == "" || strings.Contains(r.CustomerName, filter.Search) || strings.Contains(r.PhoneNumber, filter.Search) {
			all = append(all, r)
		}
	}
	total := len(all)
	start := min(params.Offset(), total)
	end := min(start+params.PageSize, total)
	return all[start:end], total, nil
}

func (f *fakeReservationRepo) ListActiveForSlot(ctx context.Context, roomName string, date domain.Date, excludeBookingID string) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.sorted() {
		if r.RoomName == roomName && r.ReservationDate.Equal(date.Time) && r.Active() &&
			(excludeBookingID == "" || r.BookingID != excludeBookingID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListAwaitingDeposit(ctx context.Context) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.sorted() {
		if r.Status == domain.ReservationRequested && !r.IsCoupon && r.AccountSMSStatus == domain.SMSSent {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	if _, ok := f.byID[r.ID]; !ok {
		return domain.ErrNotFound
	}
	f.updates++
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCouponRepo is an in-memory CouponRepository.
type fakeCouponRepo struct {
	byID      map[int64]*domain.CouponCustomer
	histories []*domain.CouponHistory
	nextID    int64
	expiredOn domain.Date
	// historyErr fails CreateHistory
	historyErr error
}

func newFakeCouponRepo(cs ...*domain.CouponCustomer) *fakeCouponRepo {
	f := &fakeCouponRepo{byID: make(map[int64]*domain.CouponCustomer), nextID: 1}
	for _, c := range cs {
		if c.ID == 0 {
			c.ID = f.nextID
		}
		if c.ID >= f.nextID {
			f.nextID = c.ID + 1
		}
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCouponRepo) Create(ctx context.Context, c *domain.CouponCustomer) error {
	if _, err := f.GetByPhoneAndCategory(ctx, c.PhoneNumber, c.PianoCategory); err == nil {
		return domain.ErrDuplicate
	}
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCouponRepo) GetByID(ctx context.Context, id int64) (*domain.CouponCustomer, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCouponRepo) GetByPhoneAndCategory(ctx context.Context, phone, category string) (*domain.CouponCustomer, error) {
	for _, c := range f.byID {
		if c.PhoneNumber == phone && c.PianoCategory == category {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCouponRepo) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.CouponCustomer, int, error) {
	var out []*domain.CouponCustomer
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCouponRepo) ListActiveByCategory(ctx context.Context, category string) ([]*domain.CouponCustomer, error) {
	var out []*domain.CouponCustomer
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.byID[id]; ok && c.PianoCategory == category && c.Status == domain.CouponActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, c *domain.CouponCustomer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCouponRepo) ExpireBefore(ctx context.Context, today domain.Date) (int, error) {
	f.expiredOn = today
	n := 0
	for _, c := range f.byID {
		if c.RefreshExpiry(today) {
			n++
		}
	}
	return n, nil
}

func (f *fakeCouponRepo) CreateHistory(ctx context.Context, h *domain.CouponHistory) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	h.ID = int64(len(f.histories) + 1)
	f.histories = append(f.histories, h)
	return nil
}

func (f *fakeCouponRepo) ListHistory(ctx context.Context, customerID int64) ([]*domain.CouponHistory, error) {
	var out []*domain.CouponHistory
	for i := len(f.histories) - 1; i >= 0; i-- {
		if f.histories[i].CustomerID == customerID {
			out = append(out, f.histories[i])
		}
	}
	return out, nil
}

// fakeDepositRepo is an in-memory DepositRepository.
type fakeDepositRepo struct {
	txs     []*domain.AccountTransaction
	matched map[int64][]int64
	err     error // if set, FindUnmatchedDeposit returns this error
	// confirmErr fails ConfirmMatch
	confirmErr error
}

func newFakeDepositRepo(txs ...*domain.AccountTransaction) *fakeDepositRepo {
	f := &fakeDepositRepo{matched: make(map[int64][]int64)}
	for i, t := range txs {
		t.ID = int64(i + 1)
		if t.MatchStatus == "" {
			t.MatchStatus = domain.MatchUnmatched
		}
		if t.TransactionType == "" {
			t.TransactionType = domain.TransactionDeposit
		}
		f.txs = append(f.txs, t)
	}
	return f
}

func (f *fakeDepositRepo) Create(ctx context.Context, t *domain.AccountTransaction) error {
	for _, existing := range f.txs {
		if existing.TransactionID == t.TransactionID {
			return domain.ErrDuplicate
		}
	}
	t.ID = int64(len(f.txs) + 1)
	f.txs = append(f.txs, t)
	return nil
}

func (f *fakeDepositRepo) List(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.AccountTransaction, int, error) {
	return f.txs, len(f.txs), nil
}

func (f *fakeDepositRepo) FindUnmatchedDeposit(ctx context.Context, depositorName string, amount int, since domain.Date) (*domain.AccountTransaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.txs {
		if t.TransactionType == domain.TransactionDeposit && t.MatchStatus == domain.MatchUnmatched &&
			t.DepositorName == depositorName && t.Amount == amount && !t.TransactionDate.Before(since) {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDepositRepo) ListUnmatchedDeposits(ctx context.Context, depositorName string, since domain.Date, limit int) ([]*domain.AccountTransaction, error) {
	var out []*domain.AccountTransaction
	for _, t := range f.txs {
		if len(out) == limit {
			break
		}
		if t.TransactionType == domain.TransactionDeposit && t.MatchStatus == domain.MatchUnmatched &&
			t.DepositorName == depositorName && !t.TransactionDate.Before(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeDepositRepo) ConfirmMatch(ctx context.Context, transactionID int64, reservationIDs []int64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	for _, t := range f.txs {
		if t.ID == transactionID {
			t.MatchStatus = domain.MatchConfirmed
			t.MatchedReservationIDs = reservationIDs
			f.matched[transactionID] = reservationIDs
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTemplateRepo is an in-memory MessageTemplateRepository.
type fakeTemplateRepo struct {
	byCode map[string]*domain.MessageTemplate
}

func newFakeTemplateRepo(ts ...*domain.MessageTemplate) *fakeTemplateRepo {
	f := &fakeTemplateRepo{byCode: make(map[string]*domain.MessageTemplate)}
	for i, t := range ts {
		t.ID = int64(i + 1)
		f.byCode[t.Code] = t
	}
	return f
}

func (f *fakeTemplateRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.MessageTemplate, int, error) {
	var out []*domain.MessageTemplate
	for _, t := range f.byCode {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	for _, t := range f.byCode {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTemplateRepo) GetActiveByCode(ctx context.Context, code string) (*domain.MessageTemplate, error) {
	if t, ok := f.byCode[code]; ok && t.IsActive {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTemplateRepo) Update(ctx context.Context, t *domain.MessageTemplate) error {
	f.byCode[t.Code] = t
	return nil
}

func (f *fakeTemplateRepo) CreateIfMissing(ctx context.Context, t *domain.MessageTemplate) (bool, error) {
	if _, ok := f.byCode[t.Code]; ok {
		return false, nil
	}
	t.ID = int64(len(f.byCode) + 1)
	f.byCode[t.Code] = t
	return true, nil
}

// fakeDefaults is a fixed DefaultTemplateSource.
type fakeDefaults []domain.DefaultTemplate

func (f fakeDefaults) Defaults() []domain.DefaultTemplate { return f }

func (f fakeDefaults) Lookup(code string) (domain.DefaultTemplate, bool) {
	for _, d := range f {
		if d.Code == code {
			return d, true
		}
	}
	return domain.DefaultTemplate{}, false
}

var testDefaults = fakeDefaults{
	{Code: domain.TemplateConfirmation, Title: "확정", Content: "[{studio}] {customer_name} {date} {start_time}~{end_time} {room_name} pw={room_pw}"},
	{Code: domain.TemplateConfirmationExam, Title: "확정-입시", Content: "EXAM {customer_name}"},
	{Code: domain.TemplatePaymentGuide, Title: "입금", Content: "{bank} {account} {price}원 {unknown}"},
}

// fakeRoomPasswordRepo is an in-memory RoomPasswordRepository.
type fakeRoomPasswordRepo struct {
	byRoom map[string]*domain.RoomPassword
	nextID int64
}

func newFakeRoomPasswordRepo() *fakeRoomPasswordRepo {
	return &fakeRoomPasswordRepo{byRoom: make(map[string]*domain.RoomPassword), nextID: 1}
}

func (f *fakeRoomPasswordRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.RoomPassword, int, error) {
	var out []*domain.RoomPassword
	for _, p := range f.byRoom {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeRoomPasswordRepo) GetByID(ctx context.Context, id int64) (*domain.RoomPassword, error) {
	for _, p := range f.byRoom {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoomPasswordRepo) GetByRoomName(ctx context.Context, roomName string) (*domain.RoomPassword, error) {
	if p, ok := f.byRoom[roomName]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoomPasswordRepo) Create(ctx context.Context, p *domain.RoomPassword) error {
	if _, ok := f.byRoom[p.RoomName]; ok {
		return domain.ErrDuplicate
	}
	p.ID = f.nextID
	f.nextID++
	f.byRoom[p.RoomName] = p
	return nil
}

func (f *fakeRoomPasswordRepo) Update(ctx context.Context, p *domain.RoomPassword) error {
	for name, existing := range f.byRoom {
		if existing.ID == p.ID {
			p.RoomName = name
			f.byRoom[name] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeSettingsRepo holds the singleton settings in memory.
type fakeSettingsRepo struct {
	policy  domain.StudioPolicy
	control domain.AutomationControl
	err     error
}

func (f *fakeSettingsRepo) GetStudioPolicy(ctx context.Context) (*domain.StudioPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := f.policy
	return &p, nil
}

func (f *fakeSettingsRepo) SetExamPeriod(ctx context.Context, examPeriod bool) (*domain.StudioPolicy, error) {
	f.policy.ExamPeriod = examPeriod
	p := f.policy
	return &p, nil
}

func (f *fakeSettingsRepo) GetAutomationControl(ctx context.Context) (*domain.AutomationControl, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := f.control
	return &c, nil
}

func (f *fakeSettingsRepo) SetAutomationEnabled(ctx context.Context, enabled bool) (*domain.AutomationControl, error) {
	f.control.Enabled = enabled
	c := f.control
	return &c, nil
}

// fakeSMSSender records every message.
type fakeSMSSender struct {
	sent   []sentSMS
	failTo map[string]bool
}

type sentSMS struct {
	to, message string
}

func (f *fakeSMSSender) Send(ctx context.Context, to, message string) error {
	if f.failTo[to] {
		return errors.New("carrier rejected")
	}
	f.sent = append(f.sent, sentSMS{to: to, message: message})
	return nil
}

// fakeMailer records the last email.
type fakeMailer struct {
	lastTo      string
	lastSubject string
	calls       int
	err         error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.calls++
	f.lastTo = to
	f.lastSubject = subject
	return f.err
}

// fakeRenderer echoes the template name as the subject.
type fakeRenderer struct {
	lastData any
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.lastData = data
	return templateName, "<p>html</p>", "text", nil
}

// fakeNotifier records notified reservations.
type fakeNotifier struct {
	notified []int64
	err      error
}

func (f *fakeNotifier) NotifyNewReservation(ctx context.Context, r *domain.Reservation) error {
	f.notified = append(f.notified, r.ID)
	return f.err
}

// fakeTransactor hands the in-memory repositories to fn. commits counts transactions whose
// fn succeeded; rollbacks counts the others.
type fakeTransactor struct {
	repos     domain.TxRepositories
	commits   int
	rollbacks int
}

func (f *fakeTransactor) InTx(ctx context.Context, fn func(repos domain.TxRepositories) error) error {
	if err := fn(f.repos); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}
