package domain

import (
	"context"
	"time"
)

// StudioPolicy is the singleton studio-wide policy.
// swagger:model StudioPolicy
type StudioPolicy struct {
	ExamPeriod bool      `json:"exam_period"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AutomationControl is the singleton switch for the background automation runner.
// swagger:model AutomationControl
type AutomationControl struct {
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsRepository stores the singleton settings rows. Reads return defaults until a row is written.
type SettingsRepository interface {
	GetStudioPolicy(ctx context.Context) (*StudioPolicy, error)
	SetExamPeriod(ctx context.Context, examPeriod bool) (*StudioPolicy, error)
	GetAutomationControl(ctx context.Context) (*AutomationControl, error)
	SetAutomationEnabled(ctx context.Context, enabled bool) (*AutomationControl, error)
}

// SettingsService defines settings use cases.
type SettingsService interface {
	GetStudioPolicy(ctx context.Context) (*StudioPolicy, error)
	UpdateStudioPolicy(ctx context.Context, examPeriod bool) (*StudioPolicy, error)
	GetAutomationControl(ctx context.Context) (*AutomationControl, error)
	UpdateAutomationControl(ctx context.Context, enabled bool) (*AutomationControl, error)
}
