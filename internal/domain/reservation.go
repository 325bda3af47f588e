package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Reservation statuses.
const (
	ReservationRequested = "requested"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// SMS delivery statuses tracked per reservation.
const (
	SMSPending         = "pending"
	SMSSent            = "sent"
	SMSFailed          = "failed"
	SMSAwaitingDeposit = "awaiting_deposit"
)

const minutesPerDay = 24 * 60

// Reservation is a room booking imported from the booking platform or entered by staff.
// swagger:model Reservation
type Reservation struct {
	ID                int64     `json:"id"`
	BookingID         string    `json:"naver_booking_id"`
	CustomerName      string    `json:"customer_name"`
	PhoneNumber       string    `json:"phone_number"`
	RoomName          string    `json:"room_name"`
	ReservationDate   Date      `json:"reservation_date"`
	StartTime         Clock     `json:"start_time"`
	EndTime           Clock     `json:"end_time"`
	Price             int       `json:"price"`
	IsCoupon          bool      `json:"is_coupon"`
	ExtraPeopleQty    int       `json:"extra_people_qty"`
	AccountSMSStatus  string    `json:"account_sms_status"`
	CompleteSMSStatus string    `json:"complete_sms_status"`
	Status            string    `json:"reservation_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// span returns start and end as minutes from the start of the reservation day.
// An end before the start runs past midnight.
func (r *Reservation) span() (start, end int) {
	start, end = r.StartTime.Minutes, r.EndTime.Minutes
	if end < start {
		end += minutesPerDay
	}
	return start, end
}

// DurationMinutes is the number of coupon minutes the booking consumes.
// Coupon bookings with extra people are charged half the base time per extra person.
func (r *Reservation) DurationMinutes() int {
	if !r.StartTime.Valid || !r.EndTime.Valid {
		return 0
	}
	start, end := r.span()
	base := end - start
	if r.IsCoupon && r.ExtraPeopleQty > 0 {
		return base + base*r.ExtraPeopleQty/2
	}
	return base
}

// Overlaps reports whether r and other occupy the same room at the same time.
func (r *Reservation) Overlaps(other *Reservation) bool {
	if r.RoomName != other.RoomName || !r.ReservationDate.Equal(other.ReservationDate.Time) {
		return false
	}
	aStart, aEnd := r.span()
	bStart, bEnd := other.span()
	return aStart < bEnd && aEnd > bStart
}

// Active reports whether the reservation still holds its time slot.
func (r *Reservation) Active() bool {
	return r.Status == ReservationRequested || r.Status == ReservationConfirmed
}

// Validate checks the fields required to store a reservation.
func (r *Reservation) Validate() error {
	var errs []string
	if strings.TrimSpace(r.CustomerName) == "" {
		errs = append(errs, "customer_name is required")
	}
	if strings.TrimSpace(r.RoomName) == "" {
		errs = append(errs, "room_name is required")
	}
	if r.ReservationDate.IsZero() {
		errs = append(errs, "reservation_date is required")
	}
	if !r.StartTime.Valid || !r.EndTime.Valid {
		errs = append(errs, "start_time and end_time are required")
	}
	if r.Price < 0 {
		errs = append(errs, "price must be >= 0")
	}
	if r.ExtraPeopleQty < 0 {
		errs = append(errs, "extra_people_qty must be >= 0")
	}
	if !validReservationStatus(r.Status) {
		errs = append(errs, "reservation_status must be requested, confirmed or cancelled")
	}
	if !ValidSMSStatus(r.AccountSMSStatus) || !ValidSMSStatus(r.CompleteSMSStatus) {
		errs = append(errs, "sms status must be pending, sent, failed or awaiting_deposit")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

func validReservationStatus(s string) bool {
	switch s {
	case ReservationRequested, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

// ValidSMSStatus reports whether s is a known SMS status.
func ValidSMSStatus(s string) bool {
	switch s {
	case SMSPending, SMSSent, SMSFailed, SMSAwaitingDeposit:
		return true
	}
	return false
}

// ApplyDefaults fills unset statuses with their initial values.
func (r *Reservation) ApplyDefaults() {
	if r.Status == "" {
		r.Status = ReservationRequested
	}
	if r.AccountSMSStatus == "" {
		r.AccountSMSStatus = SMSPending
	}
	if r.CompleteSMSStatus == "" {
		r.CompleteSMSStatus = SMSAwaitingDeposit
	}
}

// Columns a reservation list may be ordered by.
var reservationOrderings = map[string]bool{
	"created_at":       true,
	"reservation_date": true,
	"start_time":       true,
}

// DefaultReservationOrdering lists newest bookings first.
const DefaultReservationOrdering = "-created_at"

// ListFilter narrows a paged list query.
type ListFilter struct {
	Search   string
	Ordering string
}

// ReservationOrdering validates an ordering parameter ("field" or "-field").
// Unknown fields fall back to DefaultReservationOrdering.
func ReservationOrdering(s string) (column string, desc bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultReservationOrdering
	}
	desc = strings.HasPrefix(s, "-")
	column = strings.TrimPrefix(s, "-")
	if !reservationOrderings[column] {
		return "created_at", true
	}
	return column, desc
}

// ReservationUpdate holds the optional fields of a reservation PATCH.
type ReservationUpdate struct {
	Status            *string
	AccountSMSStatus  *string
	CompleteSMSStatus *string
	Price             *int
	ExtraPeopleQty    *int
}

// Apply copies the set fields onto r.
func (u ReservationUpdate) Apply(r *Reservation) {
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.AccountSMSStatus != nil {
		r.AccountSMSStatus = *u.AccountSMSStatus
	}
	if u.CompleteSMSStatus != nil {
		r.CompleteSMSStatus = *u.CompleteSMSStatus
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.ExtraPeopleQty != nil {
		r.ExtraPeopleQty = *u.ExtraPeopleQty
	}
}

// ReservationRepository defines storage for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	List(ctx context.Context, filter ListFilter, params PaginationParams) ([]*Reservation, int, error)
	// ListActiveForSlot returns requested/confirmed reservations in the room on the date, excluding excludeBookingID.
	ListActiveForSlot(ctx context.Context, roomName string, date Date, excludeBookingID string) ([]*Reservation, error)
	// ListAwaitingDeposit returns non-coupon requested reservations whose account SMS was sent, oldest first.
	ListAwaitingDeposit(ctx context.Context) ([]*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, id int64) error
}

// ReservationService defines reservation use cases.
type ReservationService interface {
	ListReservations(ctx context.Context, filter ListFilter, params PaginationParams) ([]*Reservation, int, error)
	GetReservation(ctx context.Context, id int64) (*Reservation, error)
	CreateReservation(ctx context.Context, r *Reservation) error
	UpdateReservation(ctx context.Context, id int64, update ReservationUpdate) (*Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
	// ConfirmCouponReservation deducts the booking from the customer's coupon balance and confirms it.
	ConfirmCouponReservation(ctx context.Context, id int64) (*Reservation, *CouponCustomer, error)
}
