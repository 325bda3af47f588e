package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SMSSender delivers a text message to one phone number (infrastructure port).
type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}

// NewReservationEmailData holds data for the owner's new-reservation email.
type NewReservationEmailData struct {
	Studio       string
	CustomerName string
	PhoneNumber  string
	RoomName     string
	Date         string
	StartTime    string
	EndTime      string
	Price        int
	IsCoupon     bool
}

// NotificationService notifies the studio owner about booking activity.
type NotificationService interface {
	NotifyNewReservation(ctx context.Context, r *Reservation) error
}
