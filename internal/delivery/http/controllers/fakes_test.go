package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testWindowSize = 5

// newRequest builds a request with an optional JSON body and id path value.
func newRequest(t *testing.T, method, url, id string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, r)
	if id != "" {
		req.SetPathValue("id", id)
	}
	return req
}

// decodeEnvelope decodes the response envelope and, when dest is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if dest != nil && envelope.Data != nil {
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, dest))
	}
	return envelope
}

// fakeReservationService implements domain.ReservationService for handler tests.
type fakeReservationService struct {
	err         error
	list        []*domain.Reservation
	total       int
	reservation *domain.Reservation
	customer    *domain.CouponCustomer
	lastFilter  domain.ListFilter
	lastParams  domain.PaginationParams
	lastCreate  *domain.Reservation
	lastID      int64
	lastUpdate  domain.ReservationUpdate
}

func (f *fakeReservationService) ListReservations(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	f.lastFilter, f.lastParams = filter, params
	return f.list, f.total, f.err
}

func (f *fakeReservationService) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	f.lastID = id
	return f.reservation, f.err
}

func (f *fakeReservationService) CreateReservation(ctx context.Context, r *domain.Reservation) error {
	f.lastCreate = r
	if f.err != nil {
		return f.err
	}
	r.ID = 42
	return nil
}

func (f *fakeReservationService) UpdateReservation(ctx context.Context, id int64, update domain.ReservationUpdate) (*domain.Reservation, error) {
	f.lastID, f.lastUpdate = id, update
	return f.reservation, f.err
}

func (f *fakeReservationService) DeleteReservation(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

func (f *fakeReservationService) ConfirmCouponReservation(ctx context.Context, id int64) (*domain.Reservation, *domain.CouponCustomer, error) {
	f.lastID = id
	return f.reservation, f.customer, f.err
}

// fakeCouponService implements domain.CouponService for handler tests.
type fakeCouponService struct {
	err         error
	list        []*domain.CouponCustomer
	total       int
	charge      *domain.ChargeResult
	customer    *domain.CouponCustomer
	histories   []*domain.CouponHistory
	bulk        *domain.BulkSMSResult
	lastCharge  domain.ChargeRequest
	lastUpdate  domain.CouponCustomerUpdate
	lastID      int64
	lastBulkCat string
	lastBulkMsg string
}

func (f *fakeCouponService) ListCustomers(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.CouponCustomer, int, error) {
	return f.list, f.total, f.err
}

func (f *fakeCouponService) RegisterOrCharge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	f.lastCharge = req
	return f.charge, f.err
}

func (f *fakeCouponService) UpdateCustomer(ctx context.Context, id int64, update domain.CouponCustomerUpdate) (*domain.CouponCustomer, error) {
	f.lastID, f.lastUpdate = id, update
	return f.customer, f.err
}

func (f *fakeCouponService) GetHistory(ctx context.Context, id int64) (*domain.CouponCustomer, []*domain.CouponHistory, error) {
	f.lastID = id
	return f.customer, f.histories, f.err
}

func (f *fakeCouponService) DeleteCustomer(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

func (f *fakeCouponService) SendBulkSMS(ctx context.Context, category, message string) (*domain.BulkSMSResult, error) {
	f.lastBulkCat, f.lastBulkMsg = category, message
	return f.bulk, f.err
}

func (f *fakeCouponService) ExpireCoupons(ctx context.Context) (int, error) {
	return 0, f.err
}

// fakeDepositService implements domain.DepositService for handler tests.
type fakeDepositService struct {
	err        error
	list       []*domain.AccountTransaction
	total      int
	report     *domain.MatchReport
	lastRecord *domain.AccountTransaction
}

func (f *fakeDepositService) ListDeposits(ctx context.Context, filter domain.ListFilter, params domain.PaginationParams) ([]*domain.AccountTransaction, int, error) {
	return f.list, f.total, f.err
}

func (f *fakeDepositService) RecordDeposit(ctx context.Context, t *domain.AccountTransaction) error {
	f.lastRecord = t
	if f.err != nil {
		return f.err
	}
	t.ID = 1
	if t.TransactionID == "" {
		t.TransactionID = "MANUAL_20250510143000"
	}
	return nil
}

func (f *fakeDepositService) MatchPayments(ctx context.Context) (*domain.MatchReport, error) {
	return f.report, f.err
}

// fakeTemplateService implements domain.MessageTemplateService for handler tests.
type fakeTemplateService struct {
	err         error
	list        []*domain.MessageTemplate
	total       int
	template    *domain.MessageTemplate
	seeded      int
	preview     string
	lastUpdate  domain.MessageTemplateUpdate
	lastPreview domain.PreviewRequest
}

func (f *fakeTemplateService) ListTemplates(ctx context.Context, params domain.PaginationParams) ([]*domain.MessageTemplate, int, error) {
	return f.list, f.total, f.err
}

func (f *fakeTemplateService) UpdateTemplate(ctx context.Context, id int64, update domain.MessageTemplateUpdate) (*domain.MessageTemplate, error) {
	f.lastUpdate = update
	return f.template, f.err
}

func (f *fakeTemplateService) SeedDefaults(ctx context.Context) (int, error) {
	return f.seeded, f.err
}

func (f *fakeTemplateService) Preview(ctx context.Context, req domain.PreviewRequest) (string, error) {
	f.lastPreview = req
	return f.preview, f.err
}

func (f *fakeTemplateService) Render(ctx context.Context, code string, r *domain.Reservation, extra map[string]any) (string, error) {
	return f.preview, f.err
}

// fakeRoomPasswordService implements domain.RoomPasswordService for handler tests.
type fakeRoomPasswordService struct {
	err  error
	list []*domain.RoomPassword
}

func (f *fakeRoomPasswordService) ListRoomPasswords(ctx context.Context, params domain.PaginationParams) ([]*domain.RoomPassword, int, error) {
	return f.list, len(f.list), f.err
}

func (f *fakeRoomPasswordService) CreateRoomPassword(ctx context.Context, roomName, pw string) (*domain.RoomPassword, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RoomPassword{ID: 1, RoomName: roomName, RoomPW: pw}, nil
}

func (f *fakeRoomPasswordService) UpdateRoomPassword(ctx context.Context, id int64, pw string) (*domain.RoomPassword, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RoomPassword{ID: id, RoomName: "국산 1번방", RoomPW: pw}, nil
}

// fakeSettingsService implements domain.SettingsService for handler tests.
type fakeSettingsService struct {
	err     error
	policy  domain.StudioPolicy
	control domain.AutomationControl
}

func (f *fakeSettingsService) GetStudioPolicy(ctx context.Context) (*domain.StudioPolicy, error) {
	return &f.policy, f.err
}

func (f *fakeSettingsService) UpdateStudioPolicy(ctx context.Context, examPeriod bool) (*domain.StudioPolicy, error) {
	f.policy.ExamPeriod = examPeriod
	return &f.policy, f.err
}

func (f *fakeSettingsService) GetAutomationControl(ctx context.Context) (*domain.AutomationControl, error) {
	return &f.control, f.err
}

func (f *fakeSettingsService) UpdateAutomationControl(ctx context.Context, enabled bool) (*domain.AutomationControl, error) {
	f.control.Enabled = enabled
	return &f.control, f.err
}
