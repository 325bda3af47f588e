package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"pianostudio/internal/delivery/http/helpers"
	"pianostudio/internal/domain"
)

// CreateRoomPasswordRequest is the request body for POST /room-passwords.
type CreateRoomPasswordRequest struct {
	RoomName string `json:"room_name"`
	RoomPW   string `json:"room_pw"`
}

// Validate implements Validator.
func (c CreateRoomPasswordRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.RoomName) == "" {
		errs = append(errs, "room_name is required")
	}
	if strings.TrimSpace(c.RoomPW) == "" {
		errs = append(errs, "room_pw is required")
	}
	return errs
}

// UpdateRoomPasswordRequest is the request body for PATCH /room-passwords/{id}.
type UpdateRoomPasswordRequest struct {
	RoomPW string `json:"room_pw"`
}

// Validate implements Validator.
func (u UpdateRoomPasswordRequest) Validate() []string {
	if strings.TrimSpace(u.RoomPW) == "" {
		return []string{"room_pw is required"}
	}
	return nil
}

// UpdateStudioPolicyRequest is the request body for PATCH /studio-policy.
type UpdateStudioPolicyRequest struct {
	ExamPeriod *bool `json:"exam_period"`
}

// Validate implements Validator.
func (u UpdateStudioPolicyRequest) Validate() []string {
	if u.ExamPeriod == nil {
		return []string{"exam_period is required"}
	}
	return nil
}

// UpdateAutomationControlRequest is the request body for PATCH /automation-control.
type UpdateAutomationControlRequest struct {
	Enabled *bool `json:"enabled"`
}

// Validate implements Validator.
func (u UpdateAutomationControlRequest) Validate() []string {
	if u.Enabled == nil {
		return []string{"enabled is required"}
	}
	return nil
}

// RoomPasswordSuccessResponse is the success envelope for endpoints returning one room password.
type RoomPasswordSuccessResponse struct {
	Data  *domain.RoomPassword `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListRoomPasswordsResponse is the data payload for GET /room-passwords.
type ListRoomPasswordsResponse struct {
	Items      []*domain.RoomPassword `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRoomPasswordsSuccessResponse is the success envelope for GET /room-passwords (200).
type ListRoomPasswordsSuccessResponse struct {
	Data  ListRoomPasswordsResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// StudioPolicySuccessResponse is the success envelope for the studio policy endpoints.
type StudioPolicySuccessResponse struct {
	Data  *domain.StudioPolicy `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// AutomationControlSuccessResponse is the success envelope for the automation control endpoints.
type AutomationControlSuccessResponse struct {
	Data  *domain.AutomationControl `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// SettingsController serves room passwords and the studio-wide singletons.
type SettingsController struct {
	Logger        *slog.Logger
	RoomPasswords domain.RoomPasswordService
	Settings      domain.SettingsService
	WindowSize    int
}

func NewSettingsController(logger *slog.Logger, rooms domain.RoomPasswordService, settings domain.SettingsService, windowSize int) *SettingsController {
	return &SettingsController{
		Logger:        logger,
		RoomPasswords: rooms,
		Settings:      settings,
		WindowSize:    windowSize,
	}
}

// ListRoomPasswords godoc
// @Summary List room passwords
// @Tags settings
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListRoomPasswordsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /room-passwords [get]
func (c *SettingsController) ListRoomPasswords(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.RoomPasswords.ListRoomPasswords(r.Context(), params)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.RoomPassword{}
	}
	meta := helpers.NewPaginationMeta(params, total, c.WindowSize)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListRoomPasswordsResponse{Items: list, Pagination: meta})
}

// CreateRoomPassword godoc
// @Summary Create a room password
// @Tags settings
// @Accept json
// @Produce json
// @Param body body CreateRoomPasswordRequest true "Room and password"
// @Success 201 {object} controllers.RoomPasswordSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room already has a password)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /room-passwords [post]
func (c *SettingsController) CreateRoomPassword(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomPasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.RoomPasswords.CreateRoomPassword(r.Context(), req.RoomName, req.RoomPW)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// UpdateRoomPassword godoc
// @Summary Change a room password
// @Tags settings
// @Accept json
// @Produce json
// @Param id path int true "Room password ID"
// @Param body body UpdateRoomPasswordRequest true "New password"
// @Success 200 {object} controllers.RoomPasswordSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /room-passwords/{id} [patch]
func (c *SettingsController) UpdateRoomPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateRoomPasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.RoomPasswords.UpdateRoomPassword(r.Context(), id, req.RoomPW)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// GetStudioPolicy godoc
// @Summary Get the studio policy
// @Tags settings
// @Produce json
// @Success 200 {object} controllers.StudioPolicySuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /studio-policy [get]
func (c *SettingsController) GetStudioPolicy(w http.ResponseWriter, r *http.Request) {
	p, err := c.Settings.GetStudioPolicy(r.Context())
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// UpdateStudioPolicy godoc
// @Summary Switch the exam period policy
// @Description While exam_period is true, exam variants of the payment guide and confirmation templates are sent.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body UpdateStudioPolicyRequest true "Policy"
// @Success 200 {object} controllers.StudioPolicySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /studio-policy [patch]
func (c *SettingsController) UpdateStudioPolicy(w http.ResponseWriter, r *http.Request) {
	var req UpdateStudioPolicyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Settings.UpdateStudioPolicy(r.Context(), *req.ExamPeriod)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// GetAutomationControl godoc
// @Summary Get the automation switch
// @Tags settings
// @Produce json
// @Success 200 {object} controllers.AutomationControlSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /automation-control [get]
func (c *SettingsController) GetAutomationControl(w http.ResponseWriter, r *http.Request) {
	ctl, err := c.Settings.GetAutomationControl(r.Context())
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ctl)
}

// UpdateAutomationControl godoc
// @Summary Turn the automation runner on or off
// @Tags settings
// @Accept json
// @Produce json
// @Param body body UpdateAutomationControlRequest true "Switch"
// @Success 200 {object} controllers.AutomationControlSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /automation-control [patch]
func (c *SettingsController) UpdateAutomationControl(w http.ResponseWriter, r *http.Request) {
	var req UpdateAutomationControlRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ctl, err := c.Settings.UpdateAutomationControl(r.Context(), *req.Enabled)
	if err != nil {
		fail(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ctl)
}
