package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"
)

// fail writes err as an API error and logs server errors.
func fail(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteDomainError(w, err) {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// listFilter reads the search and ordering query parameters.
func listFilter(r *http.Request) domain.ListFilter {
	q := r.URL.Query()
	return domain.ListFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Ordering: strings.TrimSpace(q.Get("ordering")),
	}
}

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	BookingID         string       `json:"naver_booking_id"`
	CustomerName      string       `json:"customer_name"`
	PhoneNumber       string       `json:"phone_number"`
	RoomName          string       `json:"room_name"`
	ReservationDate   domain.Date  `json:"reservation_date" swaggertype:"string" example:"2025-05-12"`
	StartTime         domain.Clock `json:"start_time" swaggertype:"string" example:"10:00"`
	EndTime           domain.Clock `json:"end_time" swaggertype:"string" example:"12:00"`
	Price             int          `json:"price"`
	IsCoupon          bool         `json:"is_coupon"`
	ExtraPeopleQty    int          `json:"extra_people_qty"`
	AccountSMSStatus  string       `json:"account_sms_status"`
	CompleteSMSStatus string       `json:"complete_sms_status"`
	Status            string       `json:"reservation_status"`
}

// Validate implements Validator. Field rules beyond presence live in the domain.
func (c CreateReservationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.CustomerName) == "" {
		errs = append(errs, "customer_name is required")
	}
	if strings.TrimSpace(c.RoomName) == "" {
		errs = append(errs, "room_name is required")
	}
	if c.ReservationDate.IsZero() {
		errs = append(errs, "reservation_date is required")
	}
	if !c.StartTime.Valid || !c.EndTime.Valid {
		errs = append(errs, "start_time and end_time are required")
	}
	return errs
}

func (c CreateReservationRequest) toDomain() *domain.Reservation {
	return &domain.Reservation{
		BookingID:         strings.TrimSpace(c.BookingID),
		CustomerName:      strings.TrimSpace(c.CustomerName),
		PhoneNumber:       c.PhoneNumber,
		RoomName:          strings.TrimSpace(c.RoomName),
		ReservationDate:   c.ReservationDate,
		StartTime:         c.StartTime,
		EndTime:           c.EndTime,
		Price:             c.Price,
		IsCoupon:          c.IsCoupon,
		ExtraPeopleQty:    c.ExtraPeopleQty,
		AccountSMSStatus:  c.AccountSMSStatus,
		CompleteSMSStatus: c.CompleteSMSStatus,
		Status:            c.Status,
	}
}

// UpdateReservationRequest is the request body for PATCH /reservations/{id}. All fields optional.
type UpdateReservationRequest struct {
	Status            *string `json:"reservation_status"`
	AccountSMSStatus  *string `json:"account_sms_status"`
	CompleteSMSStatus *string `json:"complete_sms_status"`
	Price             *int    `json:"price"`
	ExtraPeopleQty    *int    `json:"extra_people_qty"`
}

// ReservationSuccessResponse is the success envelope for endpoints returning one reservation.
type ReservationSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListReservationsResponse is the data payload for GET /reservations.
type ListReservationsResponse struct {
	Items      []*domain.Reservation  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListReservationsSuccessResponse is the success envelope for GET /reservations (200).
type ListReservationsSuccessResponse struct {
	Data  ListReservationsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ConfirmCouponResponse is the data payload for POST /reservations/{id}/confirm-coupon.
type ConfirmCouponResponse struct {
	Reservation *domain.Reservation    `json:"reservation"`
	Customer    *domain.CouponCustomer `json:"customer"`
}

// ConfirmCouponSuccessResponse is the success envelope for POST /reservations/{id}/confirm-coupon (200).
type ConfirmCouponSuccessResponse struct {
	Data  ConfirmCouponResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ReservationController struct {
	Logger     *slog.Logger
	Service    domain.ReservationService
	WindowSize int
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService, windowSize int) *ReservationController {
	return &ReservationController{
		Logger:     logger,
		Service:    svc,
		WindowSize: windowSize,
	}
}

// ListReservations godoc
// @Summary List reservations
// @Description Paged reservations. search matches customer name or phone (case-insensitive). ordering is created_at, reservation_date or start_time, prefixed with - for descending (default -created_at).
// @Tags reservations
// @Produce json
// @Param search query string false "Name or phone substring"
// @Param ordering query string false "Sort field" default(-created_at)
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListReservationsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [get]
func (c *ReservationController) ListReservations(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListReservations(r.Context(), listFilter(r), params)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	meta := helpers.NewPaginationMeta(params, total, c.WindowSize)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListReservationsResponse{Items: list, Pagination: meta})
}

// CreateReservation godoc
// @Summary Create a reservation
// @Description Creates a reservation. A booking overlapping an active reservation of the same room and date is rejected. The studio owner is notified by email.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation"
// @Success 201 {object} controllers.ReservationSuccessResponse "data contains the created reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [post]
func (c *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := req.toDomain()
	if err := c.Service.CreateReservation(r.Context(), res); err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

// GetReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} controllers.ReservationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [get]
func (c *ReservationController) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	res, err := c.Service.GetReservation(r.Context(), id)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// UpdateReservation godoc
// @Summary Update a reservation
// @Description Updates statuses, price and extra people. Omitted fields are unchanged. Reactivating a cancelled booking re-checks overlaps.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param body body UpdateReservationRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.ReservationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [patch]
func (c *ReservationController) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.UpdateReservation(r.Context(), id, domain.ReservationUpdate{
		Status:            req.Status,
		AccountSMSStatus:  req.AccountSMSStatus,
		CompleteSMSStatus: req.CompleteSMSStatus,
		Price:             req.Price,
		ExtraPeopleQty:    req.ExtraPeopleQty,
	})
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// DeleteReservation godoc
// @Summary Delete a reservation
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [delete]
func (c *ReservationController) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.DeleteReservation(r.Context(), id); err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmCoupon godoc
// @Summary Confirm a coupon reservation
// @Description Deducts the booking time from the customer's coupon of the room's piano category, records the use and confirms the reservation.
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} controllers.ConfirmCouponSuccessResponse "data contains the reservation and the updated customer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: insufficient_balance, category_mismatch, coupon_expired or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id}/confirm-coupon [post]
func (c *ReservationController) ConfirmCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	res, customer, err := c.Service.ConfirmCouponReservation(r.Context(), id)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ConfirmCouponResponse{Reservation: res, Customer: customer})
}
