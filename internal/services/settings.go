package services

import (
	"context"
	"log/slog"
	"time"

	"pianostudio/internal/domain"
)

// settingsService guards the two studio-wide switches. Flipping either one changes what
// customers are charged or what the background runner does, so every change is logged.
type settingsService struct {
	repo    domain.SettingsRepository
	logger  *slog.Logger
	timeout time.Duration
}

func NewSettingsService(repo domain.SettingsRepository, logger *slog.Logger, timeout time.Duration) domain.SettingsService {
	return &settingsService{repo: repo, logger: logger, timeout: timeout}
}

func (s *settingsService) GetStudioPolicy(ctx context.Context) (*domain.StudioPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.repo.GetStudioPolicy(ctx)
}

func (s *settingsService) UpdateStudioPolicy(ctx context.Context, examPeriod bool) (*domain.StudioPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	policy, err := s.repo.SetExamPeriod(ctx, examPeriod)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "studio policy changed", "exam_period", policy.ExamPeriod)
	return policy, nil
}

// GetAutomationControl is read by the runner before every tick.
func (s *settingsService) GetAutomationControl(ctx context.Context) (*domain.AutomationControl, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.repo.GetAutomationControl(ctx)
}

func (s *settingsService) UpdateAutomationControl(ctx context.Context, enabled bool) (*domain.AutomationControl, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	control, err := s.repo.SetAutomationEnabled(ctx, enabled)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "automation switched", "enabled", control.Enabled)
	return control, nil
}
