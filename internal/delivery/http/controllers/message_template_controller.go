package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"
)

// UpdateMessageTemplateRequest is the request body for PATCH /message-templates/{id}.
// The code is immutable and ignored if sent.
type UpdateMessageTemplateRequest struct {
	Code     string  `json:"code,omitempty"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"is_active"`
}

// PreviewTemplateRequest is the request body for POST /message-templates/preview.
type PreviewTemplateRequest struct {
	Code          string         `json:"code"`
	ReservationID *int64         `json:"reservation_id"`
	Context       map[string]any `json:"context"`
}

// Validate implements Validator.
func (p PreviewTemplateRequest) Validate() []string {
	if strings.TrimSpace(p.Code) == "" {
		return []string{"code is required"}
	}
	return nil
}

// PreviewTemplateResponse is the data payload for POST /message-templates/preview.
type PreviewTemplateResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PreviewTemplateSuccessResponse is the success envelope for POST /message-templates/preview (200).
type PreviewTemplateSuccessResponse struct {
	Data  PreviewTemplateResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SeedTemplatesResponse is the data payload for POST /message-templates/seed.
type SeedTemplatesResponse struct {
	Created int `json:"created"`
}

// SeedTemplatesSuccessResponse is the success envelope for POST /message-templates/seed (200).
type SeedTemplatesSuccessResponse struct {
	Data  SeedTemplatesResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// MessageTemplateSuccessResponse is the success envelope for PATCH /message-templates/{id} (200).
type MessageTemplateSuccessResponse struct {
	Data  *domain.MessageTemplate `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListMessageTemplatesResponse is the data payload for GET /message-templates.
type ListMessageTemplatesResponse struct {
	Items      []*domain.MessageTemplate `json:"items"`
	Pagination helpers.PaginationMeta    `json:"pagination"`
}

// ListMessageTemplatesSuccessResponse is the success envelope for GET /message-templates (200).
type ListMessageTemplatesSuccessResponse struct {
	Data  ListMessageTemplatesResponse `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

type MessageTemplateController struct {
	Logger     *slog.Logger
	Service    domain.MessageTemplateService
	WindowSize int
}

func NewMessageTemplateController(logger *slog.Logger, svc domain.MessageTemplateService, windowSize int) *MessageTemplateController {
	return &MessageTemplateController{
		Logger:     logger,
		Service:    svc,
		WindowSize: windowSize,
	}
}

// ListTemplates godoc
// @Summary List message templates
// @Tags message-templates
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListMessageTemplatesSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /message-templates [get]
func (c *MessageTemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListTemplates(r.Context(), params)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.MessageTemplate{}
	}
	meta := helpers.NewPaginationMeta(params, total, c.WindowSize)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListMessageTemplatesResponse{Items: list, Pagination: meta})
}

// UpdateTemplate godoc
// @Summary Update a message template
// @Description Updates title, content and is_active. The code cannot be changed.
// @Tags message-templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param body body UpdateMessageTemplateRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.MessageTemplateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /message-templates/{id} [patch]
func (c *MessageTemplateController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateMessageTemplateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.UpdateTemplate(r.Context(), id, domain.MessageTemplateUpdate{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: req.IsActive,
	})
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, t)
}

// SeedDefaults godoc
// @Summary Seed default message templates
// @Description Creates every built-in template whose code is missing. Existing templates are left untouched.
// @Tags message-templates
// @Produce json
// @Success 200 {object} controllers.SeedTemplatesSuccessResponse "data.created is the number of templates inserted"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /message-templates/seed [post]
func (c *MessageTemplateController) SeedDefaults(w http.ResponseWriter, r *http.Request) {
	n, err := c.Service.SeedDefaults(r.Context())
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SeedTemplatesResponse{Created: n})
}

// Preview godoc
// @Summary Preview a rendered message
// @Description Renders the active template for code (or its default) against the reservation and extra context. Unknown {placeholders} are kept as-is. During the exam period the exam variant is used when one exists.
// @Tags message-templates
// @Accept json
// @Produce json
// @Param body body PreviewTemplateRequest true "Preview request"
// @Success 200 {object} controllers.PreviewTemplateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /message-templates/preview [post]
func (c *MessageTemplateController) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewTemplateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	code := strings.TrimSpace(req.Code)
	msg, err := c.Service.Preview(r.Context(), domain.PreviewRequest{
		Code:          code,
		ReservationID: req.ReservationID,
		Context:       req.Context,
	})
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PreviewTemplateResponse{Code: code, Message: msg})
}
