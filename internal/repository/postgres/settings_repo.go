package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pianostudio/internal/domain"
)

// Singleton rows live at id 1.
const settingsRowID = 1

type settingsRepository struct {
	DB *sql.DB
}

// NewSettingsRepository returns a domain.SettingsRepository implemented with Postgres.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) GetStudioPolicy(ctx context.Context) (*domain.StudioPolicy, error) {
	p := &domain.StudioPolicy{}
	err := r.DB.QueryRowContext(ctx, `SELECT exam_period, updated_at FROM studio_policy WHERE id = $1`, settingsRowID).
		Scan(&p.ExamPeriod, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *settingsRepository) SetExamPeriod(ctx context.Context, examPeriod bool) (*domain.StudioPolicy, error) {
	query := `
		INSERT INTO studio_policy (id, exam_period, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET exam_period = EXCLUDED.exam_period, updated_at = NOW()
		RETURNING exam_period, updated_at
	`
	p := &domain.StudioPolicy{}
	if err := r.DB.QueryRowContext(ctx, query, settingsRowID, examPeriod).Scan(&p.ExamPeriod, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *settingsRepository) GetAutomationControl(ctx context.Context) (*domain.AutomationControl, error) {
	c := &domain.AutomationControl{}
	err := r.DB.QueryRowContext(ctx, `SELECT enabled, updated_at FROM automation_control WHERE id = $1`, settingsRowID).
		Scan(&c.Enabled, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *settingsRepository) SetAutomationEnabled(ctx context.Context, enabled bool) (*domain.AutomationControl, error) {
	query := `
		INSERT INTO automation_control (id, enabled, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = NOW()
		RETURNING enabled, updated_at
	`
	c := &domain.AutomationControl{}
	if err := r.DB.QueryRowContext(ctx, query, settingsRowID, enabled).Scan(&c.Enabled, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}
