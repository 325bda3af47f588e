package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"
)

// RecordDepositRequest is the request body for POST /account-transactions.
type RecordDepositRequest struct {
	TransactionID   string       `json:"transaction_id"`
	TransactionDate domain.Date  `json:"transaction_date" swaggertype:"string" example:"2025-05-12"`
	TransactionTime domain.Clock `json:"transaction_time" swaggertype:"string" example:"14:30"`
	TransactionType string       `json:"transaction_type" enums:"deposit,withdrawal"`
	Amount          int          `json:"amount"`
	Balance         int          `json:"balance"`
	DepositorName   string       `json:"depositor_name"`
	Memo            string       `json:"memo"`
}

// Validate implements Validator.
func (d RecordDepositRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(d.DepositorName) == "" {
		errs = append(errs, "depositor_name is required")
	}
	if d.Amount <= 0 {
		errs = append(errs, "amount must be > 0")
	}
	return errs
}

// DepositSuccessResponse is the success envelope for POST /account-transactions (201).
type DepositSuccessResponse struct {
	Data  *domain.AccountTransaction `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// ListDepositsResponse is the data payload for GET /account-transactions.
type ListDepositsResponse struct {
	Items      []*domain.AccountTransaction `json:"items"`
	Pagination helpers.PaginationMeta       `json:"pagination"`
}

// ListDepositsSuccessResponse is the success envelope for GET /account-transactions (200).
type ListDepositsSuccessResponse struct {
	Data  ListDepositsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// MatchReportSuccessResponse is the success envelope for POST /account-transactions/match (200).
type MatchReportSuccessResponse struct {
	Data  *domain.MatchReport `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type DepositController struct {
	Logger     *slog.Logger
	Service    domain.DepositService
	WindowSize int
}

func NewDepositController(logger *slog.Logger, svc domain.DepositService, windowSize int) *DepositController {
	return &DepositController{
		Logger:     logger,
		Service:    svc,
		WindowSize: windowSize,
	}
}

// ListDeposits godoc
// @Summary List account transactions
// @Description Paged bank transactions, newest first. search matches depositor, memo or transaction id.
// @Tags deposits
// @Produce json
// @Param search query string false "Depositor, memo or transaction id substring"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListDepositsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /account-transactions [get]
func (c *DepositController) ListDeposits(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListDeposits(r.Context(), listFilter(r), params)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.AccountTransaction{}
	}
	meta := helpers.NewPaginationMeta(params, total, c.WindowSize)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListDepositsResponse{Items: list, Pagination: meta})
}

// RecordDeposit godoc
// @Summary Record a bank transaction by hand
// @Description Stores a transaction as unmatched. A blank transaction_id becomes MANUAL_<timestamp>; missing date and time default to now.
// @Tags deposits
// @Accept json
// @Produce json
// @Param body body RecordDepositRequest true "Transaction"
// @Success 201 {object} controllers.DepositSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate transaction_id)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /account-transactions [post]
func (c *DepositController) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	var req RecordDepositRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tx := &domain.AccountTransaction{
		TransactionID:   req.TransactionID,
		TransactionDate: req.TransactionDate,
		TransactionTime: req.TransactionTime,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Balance:         req.Balance,
		DepositorName:   req.DepositorName,
		Memo:            req.Memo,
	}
	if err := c.Service.RecordDeposit(r.Context(), tx); err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tx)
}

// MatchPayments godoc
// @Summary Match deposits to reservations
// @Description Runs one payment matching pass over reservations awaiting deposit, grouped by phone number.
// @Tags deposits
// @Produce json
// @Success 200 {object} controllers.MatchReportSuccessResponse "data contains the match report"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /account-transactions/match [post]
func (c *DepositController) MatchPayments(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.MatchPayments(r.Context())
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
