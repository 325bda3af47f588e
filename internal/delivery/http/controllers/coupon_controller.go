package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"
)

// ChargeCouponRequest is the request body for POST /coupon-customers.
type ChargeCouponRequest struct {
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	PianoCategory  string `json:"piano_category" enums:"domestic,import"`
	CouponType     int    `json:"coupon_type" enums:"10,20,50,100"`
	ChargedMinutes int    `json:"charged_minutes"`
}

// Validate implements Validator.
func (c ChargeCouponRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.CustomerName) == "" {
		errs = append(errs, "customer_name is required")
	}
	if strings.TrimSpace(c.PhoneNumber) == "" {
		errs = append(errs, "phone_number is required")
	}
	if !domain.ValidCategory(c.PianoCategory) {
		errs = append(errs, "piano_category must be domestic or import")
	}
	if _, ok := domain.CouponValidityMonths(c.CouponType); !ok {
		errs = append(errs, "coupon_type must be 10, 20, 50 or 100")
	}
	if c.ChargedMinutes < 0 {
		errs = append(errs, "charged_minutes must be >= 0")
	}
	return errs
}

// UpdateCouponCustomerRequest is the request body for PATCH /coupon-customers/{id}. All fields optional.
type UpdateCouponCustomerRequest struct {
	CustomerName     *string      `json:"customer_name"`
	PhoneNumber      *string      `json:"phone_number"`
	ExpiresAt        *domain.Date `json:"coupon_expires_at" swaggertype:"string" example:"2025-06-30"`
	RemainingMinutes *int         `json:"remaining_time"`
	Reason           string       `json:"reason"`
}

// Validate implements Validator.
func (u UpdateCouponCustomerRequest) Validate() []string {
	if u.RemainingMinutes != nil && *u.RemainingMinutes < 0 {
		return []string{"remaining_time must be >= 0"}
	}
	return nil
}

// SendCouponSMSRequest is the request body for POST /coupon-customers/send-sms.
type SendCouponSMSRequest struct {
	Category string `json:"category" enums:"domestic,import"`
	Message  string `json:"message"`
}

// Validate implements Validator.
func (s SendCouponSMSRequest) Validate() []string {
	var errs []string
	if !domain.ValidCategory(s.Category) {
		errs = append(errs, "category must be domestic or import")
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ChargeCouponSuccessResponse is the success envelope for POST /coupon-customers.
type ChargeCouponSuccessResponse struct {
	Data  *domain.ChargeResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CouponCustomerSuccessResponse is the success envelope for PATCH /coupon-customers/{id} (200).
type CouponCustomerSuccessResponse struct {
	Data  *domain.CouponCustomer `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListCouponCustomersResponse is the data payload for GET /coupon-customers.
type ListCouponCustomersResponse struct {
	Items      []*domain.CouponCustomer `json:"items"`
	Pagination helpers.PaginationMeta   `json:"pagination"`
}

// ListCouponCustomersSuccessResponse is the success envelope for GET /coupon-customers (200).
type ListCouponCustomersSuccessResponse struct {
	Data  ListCouponCustomersResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// CouponHistoryItem is one history row with its rendered usage window.
type CouponHistoryItem struct {
	*domain.CouponHistory
	UsageWindow    string `json:"usage_window"`
	RemainingLabel string `json:"remaining_label"`
}

// CouponHistoryResponse is the data payload for GET /coupon-customers/{id}/history.
type CouponHistoryResponse struct {
	Customer  *domain.CouponCustomer `json:"customer"`
	Histories []CouponHistoryItem    `json:"histories"`
}

// CouponHistorySuccessResponse is the success envelope for GET /coupon-customers/{id}/history (200).
type CouponHistorySuccessResponse struct {
	Data  CouponHistoryResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// BulkSMSSuccessResponse is the success envelope for POST /coupon-customers/send-sms (200).
type BulkSMSSuccessResponse struct {
	Data  *domain.BulkSMSResult `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type CouponController struct {
	Logger     *slog.Logger
	Service    domain.CouponService
	WindowSize int
}

func NewCouponController(logger *slog.Logger, svc domain.CouponService, windowSize int) *CouponController {
	return &CouponController{
		Logger:     logger,
		Service:    svc,
		WindowSize: windowSize,
	}
}

// ListCustomers godoc
// @Summary List coupon customers
// @Description Paged coupon customers, most recently updated first. search matches name or phone.
// @Tags coupons
// @Produce json
// @Param search query string false "Name or phone substring"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListCouponCustomersSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers [get]
func (c *CouponController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListCustomers(r.Context(), listFilter(r), params)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.CouponCustomer{}
	}
	meta := helpers.NewPaginationMeta(params, total, c.WindowSize)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCouponCustomersResponse{Items: list, Pagination: meta})
}

// RegisterOrCharge godoc
// @Summary Register or charge a coupon customer
// @Description Creates the customer for (phone, category) if needed, renews the coupon from today and adds charged_minutes. Returns 201 for a new customer, 200 otherwise.
// @Tags coupons
// @Accept json
// @Produce json
// @Param body body ChargeCouponRequest true "Charge"
// @Success 200 {object} controllers.ChargeCouponSuccessResponse "existing customer charged"
// @Success 201 {object} controllers.ChargeCouponSuccessResponse "new customer registered"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers [post]
func (c *CouponController) RegisterOrCharge(w http.ResponseWriter, r *http.Request) {
	var req ChargeCouponRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.RegisterOrCharge(r.Context(), domain.ChargeRequest{
		CustomerName:   req.CustomerName,
		PhoneNumber:    req.PhoneNumber,
		PianoCategory:  req.PianoCategory,
		CouponType:     req.CouponType,
		ChargedMinutes: req.ChargedMinutes,
	})
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	status := http.StatusOK
	if res.IsNewCustomer {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, res)
}

// UpdateCustomer godoc
// @Summary Update a coupon customer
// @Description Staff edit. A remaining_time change is logged as a manual history entry with its delta, other changes as an edit entry.
// @Tags coupons
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param body body UpdateCouponCustomerRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.CouponCustomerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers/{id} [patch]
func (c *CouponController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateCouponCustomerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	customer, err := c.Service.UpdateCustomer(r.Context(), id, domain.CouponCustomerUpdate{
		CustomerName:     req.CustomerName,
		PhoneNumber:      req.PhoneNumber,
		ExpiresAt:        req.ExpiresAt,
		RemainingMinutes: req.RemainingMinutes,
		Reason:           req.Reason,
	})
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, customer)
}

// GetHistory godoc
// @Summary Coupon customer history
// @Description Returns the customer and its balance history, newest first.
// @Tags coupons
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} controllers.CouponHistorySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers/{id}/history [get]
func (c *CouponController) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	customer, histories, err := c.Service.GetHistory(r.Context(), id)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	items := make([]CouponHistoryItem, 0, len(histories))
	for _, h := range histories {
		items = append(items, CouponHistoryItem{
			CouponHistory:  h,
			UsageWindow:    h.UsageWindow(),
			RemainingLabel: domain.FormatMinutes(h.RemainingMinutes),
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CouponHistoryResponse{Customer: customer, Histories: items})
}

// DeleteCustomer godoc
// @Summary Delete a coupon customer
// @Tags coupons
// @Param id path int true "Customer ID"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers/{id} [delete]
func (c *CouponController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.DeleteCustomer(r.Context(), id); err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SendBulkSMS godoc
// @Summary Send an SMS to every active coupon customer of a category
// @Description The message may use {customer_name}, {remaining_time} and {expires_at}. Failed phone numbers are reported, not fatal.
// @Tags coupons
// @Accept json
// @Produce json
// @Param body body SendCouponSMSRequest true "Category and message"
// @Success 200 {object} controllers.BulkSMSSuccessResponse "data contains sent count and failed phones"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coupon-customers/send-sms [post]
func (c *CouponController) SendBulkSMS(w http.ResponseWriter, r *http.Request) {
	var req SendCouponSMSRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.SendBulkSMS(r.Context(), req.Category, req.Message)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}
