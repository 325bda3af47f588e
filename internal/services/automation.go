package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pianostudio/internal/domain"
)

// TickResult summarizes one automation tick.
type TickResult struct {
	Expired int
	Match   *domain.MatchReport
}

// Runner polls on a fixed interval: it expires lapsed coupons and matches deposits to
// reservations while automation control is enabled.
type Runner struct {
	settings domain.SettingsService
	coupons  domain.CouponService
	deposits domain.DepositService
	interval time.Duration
	logger   *slog.Logger
}

// DefaultRunnerInterval replaces a non-positive runner interval.
const DefaultRunnerInterval = 5 * time.Minute

// NewRunner returns a Runner that ticks every interval. A non-positive interval is
// logged and replaced by DefaultRunnerInterval.
func NewRunner(settings domain.SettingsService, coupons domain.CouponService, deposits domain.DepositService, interval time.Duration, logger *slog.Logger) *Runner {
	logger = logger.With("component", "automation")
	if interval <= 0 {
		logger.Warn("invalid automation interval, using default",
			"interval", interval.String(), "default", DefaultRunnerInterval.String())
		interval = DefaultRunnerInterval
	}
	return &Runner{
		settings: settings,
		coupons:  coupons,
		deposits: deposits,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, ticking every interval.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "automation runner started", "interval", r.interval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "automation runner stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	ctl, err := r.settings.GetAutomationControl(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "load automation control", "err", err)
		return
	}
	if !ctl.Enabled {
		r.logger.DebugContext(ctx, "automation disabled, skipping tick")
		return
	}
	res, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "automation tick failed", "err", err)
		return
	}
	r.logger.InfoContext(ctx, "automation tick",
		"expired", res.Expired, "groups", res.Match.Groups, "confirmed", res.Match.Confirmed, "skipped", res.Match.Skipped)
}

// RunOnce runs a single tick regardless of the automation control switch.
func (r *Runner) RunOnce(ctx context.Context) (*TickResult, error) {
	expired, err := r.coupons.ExpireCoupons(ctx)
	if err != nil {
		return nil, err
	}
	report, err := r.deposits.MatchPayments(ctx)
	if err != nil {
		return &TickResult{Expired: expired, Match: report}, fmt.Errorf("match payments: %w", err)
	}
	return &TickResult{Expired: expired, Match: report}, nil
}
