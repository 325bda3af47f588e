package services

import (
	"context"
	"fmt"
	"log/slog"

	"pianostudio/internal/domain"
)

// Messenger sends customer SMS through the configured sender.
// In dry-run mode messages are rendered and logged but never delivered.
type Messenger struct {
	templates domain.MessageTemplateService
	sender    domain.SMSSender
	dryRun    bool
	logger    *slog.Logger
}

// NewMessenger returns a Messenger. templates may be nil when only SendText is used.
func NewMessenger(templates domain.MessageTemplateService, sender domain.SMSSender, dryRun bool, logger *slog.Logger) *Messenger {
	return &Messenger{templates: templates, sender: sender, dryRun: dryRun, logger: logger}
}

// SendTemplate renders code for r and sends it to the reservation's phone number.
func (m *Messenger) SendTemplate(ctx context.Context, code string, r *domain.Reservation, extra map[string]any) error {
	if m.templates == nil {
		return fmt.Errorf("send %s: no template service", code)
	}
	body, err := m.templates.Render(ctx, code, r, extra)
	if err != nil {
		return fmt.Errorf("render %s: %w", code, err)
	}
	return m.SendText(ctx, r.PhoneNumber, body)
}

// SendText sends a raw message.
func (m *Messenger) SendText(ctx context.Context, phone, message string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone number is required", domain.ErrInvalidInput)
	}
	if m.dryRun {
		m.logger.InfoContext(ctx, "dry run: sms not delivered", "to", phone, "message", message)
		return nil
	}
	if err := m.sender.Send(ctx, phone, message); err != nil {
		return fmt.Errorf("send sms to %s: %w", phone, err)
	}
	return nil
}
