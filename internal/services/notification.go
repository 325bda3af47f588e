package services

import (
	"context"
	"fmt"
	"log/slog"

	"pianostudio/internal/domain"
)

type notificationService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	ownerEmail string
	studio     string
	logger     *slog.Logger
}

// NewNotificationService returns a NotificationService that emails the studio owner.
// An empty ownerEmail disables notifications.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, ownerEmail, studio string, logger *slog.Logger) domain.NotificationService {
	return &notificationService{
		mailer:     mailer,
		renderer:   renderer,
		ownerEmail: ownerEmail,
		studio:     studio,
		logger:     logger,
	}
}

// NotifyNewReservation sends the "new_reservation" email to the owner.
func (s *notificationService) NotifyNewReservation(ctx context.Context, r *domain.Reservation) error {
	if r == nil {
		return fmt.Errorf("reservation is nil")
	}
	if s.ownerEmail == "" {
		return nil
	}
	subject, htmlBody, textBody, err := s.renderer.Render("new_reservation", domain.NewReservationEmailData{
		Studio:       s.studio,
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		RoomName:     r.RoomName,
		Date:         r.ReservationDate.String(),
		StartTime:    r.StartTime.String(),
		EndTime:      r.EndTime.String(),
		Price:        r.Price,
		IsCoupon:     r.IsCoupon,
	})
	if err != nil {
		return fmt.Errorf("failed to render new_reservation template: %w", err)
	}
	if err := s.mailer.Send(ctx, s.ownerEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new reservation email: %w", err)
	}
	s.logger.InfoContext(ctx, "owner notified", "reservation_id", r.ID)
	return nil
}
