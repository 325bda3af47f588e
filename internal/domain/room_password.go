package domain

import (
	"context"
	"time"
)

// RoomPassword is the door code of a practice room, sent to customers in confirmation messages.
// swagger:model RoomPassword
type RoomPassword struct {
	ID        int64     `json:"id"`
	RoomName  string    `json:"room_name"`
	RoomPW    string    `json:"room_pw"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomPasswordRepository defines storage for room passwords.
type RoomPasswordRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*RoomPassword, int, error)
	GetByID(ctx context.Context, id int64) (*RoomPassword, error)
	GetByRoomName(ctx context.Context, roomName string) (*RoomPassword, error)
	Create(ctx context.Context, p *RoomPassword) error
	Update(ctx context.Context, p *RoomPassword) error
}

// RoomPasswordService defines room password use cases.
type RoomPasswordService interface {
	ListRoomPasswords(ctx context.Context, params PaginationParams) ([]*RoomPassword, int, error)
	CreateRoomPassword(ctx context.Context, roomName, pw string) (*RoomPassword, error)
	UpdateRoomPassword(ctx context.Context, id int64, pw string) (*RoomPassword, error)
}
