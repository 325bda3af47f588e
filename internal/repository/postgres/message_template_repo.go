package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pianostudio/internal/domain"
)

type messageTemplateRepository struct {
	DB *sql.DB
}

// NewMessageTemplateRepository returns a domain.MessageTemplateRepository implemented with Postgres.
func NewMessageTemplateRepository(db *sql.DB) domain.MessageTemplateRepository {
	return &messageTemplateRepository{DB: db}
}

func scanTemplate(row rowScanner) (*domain.MessageTemplate, error) {
	t := &domain.MessageTemplate{}
	if err := row.Scan(&t.ID, &t.Code, &t.Title, &t.Content, &t.IsActive, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *messageTemplateRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.MessageTemplate, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM message_templates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, code, title, content, is_active, updated_at
		FROM message_templates
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*domain.MessageTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *messageTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	t, err := scanTemplate(r.DB.QueryRowContext(ctx,
		`SELECT id, code, title, content, is_active, updated_at FROM message_templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *messageTemplateRepository) GetActiveByCode(ctx context.Context, code string) (*domain.MessageTemplate, error) {
	t, err := scanTemplate(r.DB.QueryRowContext(ctx,
		`SELECT id, code, title, content, is_active, updated_at FROM message_templates WHERE code = $1 AND is_active`, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *messageTemplateRepository) Update(ctx context.Context, t *domain.MessageTemplate) error {
	query := `
		UPDATE message_templates
		SET title = $2, content = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query, t.ID, t.Title, t.Content, t.IsActive).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *messageTemplateRepository) CreateIfMissing(ctx context.Context, t *domain.MessageTemplate) (bool, error) {
	query := `
		INSERT INTO message_templates (code, title, content, is_active, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (code) DO NOTHING
		RETURNING id, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query, t.Code, t.Title, t.Content, t.IsActive).Scan(&t.ID, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
