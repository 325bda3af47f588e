package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pianostudio/internal/domain"
)

type roomPasswordRepository struct {
	DB *sql.DB
}

// NewRoomPasswordRepository returns a domain.RoomPasswordRepository implemented with Postgres.
func NewRoomPasswordRepository(db *sql.DB) domain.RoomPasswordRepository {
	return &roomPasswordRepository{DB: db}
}

func (r *roomPasswordRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.RoomPassword, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM room_passwords`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, room_name, room_pw, updated_at
		FROM room_passwords
		ORDER BY room_name
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*domain.RoomPassword, 0)
	for rows.Next() {
		p := &domain.RoomPassword{}
		if err := rows.Scan(&p.ID, &p.RoomName, &p.RoomPW, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *roomPasswordRepository) GetByID(ctx context.Context, id int64) (*domain.RoomPassword, error) {
	return r.get(ctx, `SELECT id, room_name, room_pw, updated_at FROM room_passwords WHERE id = $1`, id)
}

func (r *roomPasswordRepository) GetByRoomName(ctx context.Context, roomName string) (*domain.RoomPassword, error) {
	return r.get(ctx, `SELECT id, room_name, room_pw, updated_at FROM room_passwords WHERE room_name = $1`, roomName)
}

func (r *roomPasswordRepository) get(ctx context.Context, query string, arg any) (*domain.RoomPassword, error) {
	p := &domain.RoomPassword{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&p.ID, &p.RoomName, &p.RoomPW, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *roomPasswordRepository) Create(ctx context.Context, p *domain.RoomPassword) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO room_passwords (room_name, room_pw, updated_at) VALUES ($1, $2, NOW()) RETURNING id, updated_at`,
		p.RoomName, p.RoomPW,
	).Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room %q: %w", p.RoomName, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *roomPasswordRepository) Update(ctx context.Context, p *domain.RoomPassword) error {
	err := r.DB.QueryRowContext(ctx,
		`UPDATE room_passwords SET room_pw = $2, updated_at = NOW() WHERE id = $1 RETURNING room_name, updated_at`,
		p.ID, p.RoomPW,
	).Scan(&p.RoomName, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
