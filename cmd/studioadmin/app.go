package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"pianostudio/config"
	"pianostudio/internal/adapters/email"
	"pianostudio/internal/adapters/sms"
	"pianostudio/internal/adapters/templates"
	"pianostudio/internal/domain"
	"pianostudio/internal/repository/postgres"
	"pianostudio/internal/services"
)

// app holds the wired services shared by the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	reservations  domain.ReservationService
	coupons       domain.CouponService
	deposits      domain.DepositService
	templates     domain.MessageTemplateService
	roomPasswords domain.RoomPasswordService
	settings      domain.SettingsService
	runner        *services.Runner
}

// newApp loads configuration, opens the database and builds every service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, db: db}
	if err := a.wire(); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire() error {
	cfg, logger, timeout := a.cfg, a.logger, a.cfg.RequestTimeout

	reservationRepo := postgres.NewReservationRepository(a.db)
	couponRepo := postgres.NewCouponRepository(a.db)
	depositRepo := postgres.NewDepositRepository(a.db)
	templateRepo := postgres.NewMessageTemplateRepository(a.db)
	roomPasswordRepo := postgres.NewRoomPasswordRepository(a.db)
	settingsRepo := postgres.NewSettingsRepository(a.db)
	store := postgres.NewStore(a.db)

	defaults, err := templates.Embedded()
	if err != nil {
		return err
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	sender, err := sms.NewSender(sms.Config{
		Provider:   cfg.SMS.Provider,
		ServiceID:  cfg.SMS.ServiceID,
		AccessKey:  cfg.SMS.AccessKey,
		SecretKey:  cfg.SMS.SecretKey,
		FromNumber: cfg.SMS.FromNumber,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("create sms sender: %w", err)
	}

	studio := domain.StudioInfo{Name: cfg.StudioName, Bank: cfg.StudioBank, Account: cfg.StudioAccount}
	a.templates = services.NewMessageTemplateService(
		templateRepo, defaults, reservationRepo, couponRepo, roomPasswordRepo, settingsRepo, studio, timeout,
	)
	messenger := services.NewMessenger(a.templates, sender, cfg.Automation.DryRun, logger)

	if cfg.Email.OwnerEmail == "" {
		logger.Warn("OWNER_EMAIL not set, new reservation emails are disabled")
	}
	notifier := services.NewNotificationService(mailer, email.NewTemplateRenderer(), cfg.Email.OwnerEmail, cfg.StudioName, logger)

	a.reservations = services.NewReservationService(reservationRepo, couponRepo, store, notifier, messenger, logger, timeout)
	a.coupons = services.NewCouponService(couponRepo, store, messenger, logger, timeout)
	a.deposits = services.NewDepositService(depositRepo, reservationRepo, store, messenger, services.SafeMode{
		Enabled:          cfg.Automation.SafeMode,
		AllowedCustomers: cfg.Automation.AllowedCustomers,
	}, logger, timeout)
	a.roomPasswords = services.NewRoomPasswordService(roomPasswordRepo, timeout)
	a.settings = services.NewSettingsService(settingsRepo, logger, timeout)
	a.runner = services.NewRunner(a.settings, a.coupons, a.deposits, cfg.Automation.Interval, logger)
	return nil
}

func (a *app) Close() error {
	return a.db.Close()
}
