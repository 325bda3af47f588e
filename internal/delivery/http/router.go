package http

import (
	"log/slog"
	"net/http"
	"time"

	"pianostudio/internal/delivery/http/controllers"
	"pianostudio/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Reservations     *controllers.ReservationController
	Coupons          *controllers.CouponController
	Deposits         *controllers.DepositController
	MessageTemplates *controllers.MessageTemplateController
	Settings         *controllers.SettingsController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Reservations
	mux.HandleFunc("GET /reservations", c.Reservations.ListReservations)
	mux.HandleFunc("POST /reservations", c.Reservations.CreateReservation)
	mux.HandleFunc("GET /reservations/{id}", c.Reservations.GetReservation)
	mux.HandleFunc("PATCH /reservations/{id}", c.Reservations.UpdateReservation)
	mux.HandleFunc("DELETE /reservations/{id}", c.Reservations.DeleteReservation)
	mux.HandleFunc("POST /reservations/{id}/confirm-coupon", c.Reservations.ConfirmCoupon)

	// Coupon customers
	mux.HandleFunc("GET /coupon-customers", c.Coupons.ListCustomers)
	mux.HandleFunc("POST /coupon-customers", c.Coupons.RegisterOrCharge)
	mux.HandleFunc("POST /coupon-customers/send-sms", c.Coupons.SendBulkSMS)
	mux.HandleFunc("PATCH /coupon-customers/{id}", c.Coupons.UpdateCustomer)
	mux.HandleFunc("DELETE /coupon-customers/{id}", c.Coupons.DeleteCustomer)
	mux.HandleFunc("GET /coupon-customers/{id}/history", c.Coupons.GetHistory)

	// Deposits
	mux.HandleFunc("GET /account-transactions", c.Deposits.ListDeposits)
	mux.HandleFunc("POST /account-transactions", c.Deposits.RecordDeposit)
	mux.HandleFunc("POST /account-transactions/match", c.Deposits.MatchPayments)

	// Message templates
	mux.HandleFunc("GET /message-templates", c.MessageTemplates.ListTemplates)
	mux.HandleFunc("PATCH /message-templates/{id}", c.MessageTemplates.UpdateTemplate)
	mux.HandleFunc("POST /message-templates/seed", c.MessageTemplates.SeedDefaults)
	mux.HandleFunc("POST /message-templates/preview", c.MessageTemplates.Preview)

	// Settings
	mux.HandleFunc("GET /room-passwords", c.Settings.ListRoomPasswords)
	mux.HandleFunc("POST /room-passwords", c.Settings.CreateRoomPassword)
	mux.HandleFunc("PATCH /room-passwords/{id}", c.Settings.UpdateRoomPassword)
	mux.HandleFunc("GET /studio-policy", c.Settings.GetStudioPolicy)
	mux.HandleFunc("PATCH /studio-policy", c.Settings.UpdateStudioPolicy)
	mux.HandleFunc("GET /automation-control", c.Settings.GetAutomationControl)
	mux.HandleFunc("PATCH /automation-control", c.Settings.UpdateAutomationControl)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// slowRequest marks calls worth a warning in the access log.
const slowRequest = 2 * time.Second

// NewHandler puts request ids, CORS and access logging in front of the router.
func NewHandler(c Controllers, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.Chain(NewRouter(c),
		middleware.RequestID,
		middleware.CORS(allowedOrigins),
		middleware.AccessLog(logger, slowRequest),
	)
}
