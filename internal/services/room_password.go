package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pianostudio/internal/domain"
)

type roomPasswordService struct {
	roomPasswordRepo domain.RoomPasswordRepository
	contextTimeout   time.Duration
}

func NewRoomPasswordService(roomPasswordRepo domain.RoomPasswordRepository, timeout time.Duration) domain.RoomPasswordService {
	return &roomPasswordService{roomPasswordRepo: roomPasswordRepo, contextTimeout: timeout}
}

func (s *roomPasswordService) ListRoomPasswords(ctx context.Context, params domain.PaginationParams) ([]*domain.RoomPassword, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomPasswordRepo.List(ctx, params)
}

func (s *roomPasswordService) CreateRoomPassword(ctx context.Context, roomName, pw string) (*domain.RoomPassword, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	roomName, pw = strings.TrimSpace(roomName), strings.TrimSpace(pw)
	if roomName == "" || pw == "" {
		return nil, fmt.Errorf("%w: room_name and room_pw are required", domain.ErrInvalidInput)
	}
	p := &domain.RoomPassword{RoomName: roomName, RoomPW: pw}
	if err := s.roomPasswordRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *roomPasswordService) UpdateRoomPassword(ctx context.Context, id int64, pw string) (*domain.RoomPassword, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pw = strings.TrimSpace(pw)
	if pw == "" {
		return nil, fmt.Errorf("%w: room_pw is required", domain.ErrInvalidInput)
	}
	p := &domain.RoomPassword{ID: id, RoomPW: pw}
	if err := s.roomPasswordRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
