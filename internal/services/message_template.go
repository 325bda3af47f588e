package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"pianostudio/internal/domain"
)

type messageTemplateService struct {
	templateRepo     domain.MessageTemplateRepository
	defaults         domain.DefaultTemplateSource
	reservationRepo  domain.ReservationRepository
	couponRepo       domain.CouponRepository
	roomPasswordRepo domain.RoomPasswordRepository
	settingsRepo     domain.SettingsRepository
	studio           domain.StudioInfo
	contextTimeout   time.Duration
}

// NewMessageTemplateService creates a MessageTemplateService.
func NewMessageTemplateService(
	templateRepo domain.MessageTemplateRepository,
	defaults domain.DefaultTemplateSource,
	reservationRepo domain.ReservationRepository,
	couponRepo domain.CouponRepository,
	roomPasswordRepo domain.RoomPasswordRepository,
	settingsRepo domain.SettingsRepository,
	studio domain.StudioInfo,
	timeout time.Duration,
) domain.MessageTemplateService {
	return &messageTemplateService{
		templateRepo:     templateRepo,
		defaults:         defaults,
		reservationRepo:  reservationRepo,
		couponRepo:       couponRepo,
		roomPasswordRepo: roomPasswordRepo,
		settingsRepo:     settingsRepo,
		studio:           studio,
		contextTimeout:   timeout,
	}
}

func (s *messageTemplateService) ListTemplates(ctx context.Context, params domain.PaginationParams) ([]*domain.MessageTemplate, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.templateRepo.List(ctx, params)
}

func (s *messageTemplateService) UpdateTemplate(ctx context.Context, id int64, update domain.MessageTemplateUpdate) (*domain.MessageTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
		}
		t.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			return nil, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidInput)
		}
		t.Content = *update.Content
	}
	if update.IsActive != nil {
		t.IsActive = *update.IsActive
	}
	if err := s.templateRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return t, nil
}

// SeedDefaults inserts every built-in template whose code is missing and returns how many were created.
func (s *messageTemplateService) SeedDefaults(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	created := 0
	for _, d := range s.defaults.Defaults() {
		ok, err := s.templateRepo.CreateIfMissing(ctx, &domain.MessageTemplate{
			Code:     d.Code,
			Title:    d.Title,
			Content:  d.Content,
			IsActive: true,
		})
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", d.Code, err)
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (s *messageTemplateService) Preview(ctx context.Context, req domain.PreviewRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(req.Code) == "" {
		return "", fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}
	var r *domain.Reservation
	if req.ReservationID != nil {
		var err error
		r, err = s.reservationRepo.GetByID(ctx, *req.ReservationID)
		if err != nil {
			return "", fmt.Errorf("reservation %d: %w", *req.ReservationID, err)
		}
	}
	return s.Render(ctx, req.Code, r, req.Context)
}

// Render renders the active template for code, or its built-in default, against r and extra.
// During the exam period the *_EXAM variant of the code is used when one exists.
func (s *messageTemplateService) Render(ctx context.Context, code string, r *domain.Reservation, extra map[string]any) (string, error) {
	policy, err := s.settingsRepo.GetStudioPolicy(ctx)
	if err != nil {
		return "", fmt.Errorf("load studio policy: %w", err)
	}
	code = domain.TemplateCodeFor(code, policy.ExamPeriod)

	content, err := s.content(ctx, code)
	if err != nil {
		return "", err
	}
	values, err := s.renderContext(ctx, r)
	if err != nil {
		return "", err
	}
	maps.Copy(values, extra)
	return domain.RenderTemplate(content, values), nil
}

func (s *messageTemplateService) content(ctx context.Context, code string) (string, error) {
	t, err := s.templateRepo.GetActiveByCode(ctx, code)
	if err == nil {
		return t.Content, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("load template %s: %w", code, err)
	}
	if d, ok := s.defaults.Lookup(code); ok {
		return d.Content, nil
	}
	return "", fmt.Errorf("template %s: %w", code, domain.ErrNotFound)
}

// renderContext collects the placeholder values for a reservation.
func (s *messageTemplateService) renderContext(ctx context.Context, r *domain.Reservation) (map[string]any, error) {
	values := map[string]any{
		"studio":  s.studio.Name,
		"bank":    s.studio.Bank,
		"account": s.studio.Account,
	}
	if r == nil {
		return values, nil
	}

	category := domain.RoomCategory(r.RoomName)
	values["customer_name"] = r.CustomerName
	values["phone_number"] = r.PhoneNumber
	values["room_name"] = r.RoomName
	values["date"] = r.ReservationDate.String()
	values["start_time"] = r.StartTime.String()
	values["end_time"] = r.EndTime.String()
	values["price"] = domain.FormatAmount(r.Price)
	values["duration_minutes"] = r.DurationMinutes()
	values["add_person_count"] = r.ExtraPeopleQty
	values["room_category"] = category

	pw, err := s.roomPasswordRepo.GetByRoomName(ctx, r.RoomName)
	switch {
	case err == nil:
		values["room_pw"] = pw.RoomPW
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("load room password: %w", err)
	}

	if r.IsCoupon {
		c, err := s.couponRepo.GetByPhoneAndCategory(ctx, r.PhoneNumber, category)
		switch {
		case err == nil:
			values["remaining_minutes"] = c.RemainingMinutes
			values["piano_category"] = c.PianoCategory
			values["coupon_category"] = c.PianoCategory
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("load coupon customer: %w", err)
		}
	}
	return values, nil
}
