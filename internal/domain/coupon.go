package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Piano categories. A coupon only pays for rooms of its own category.
const (
	CategoryDomestic = "domestic"
	CategoryImport   = "import"
)

// Coupon statuses.
const (
	CouponActive  = "active"
	CouponExpired = "expired"
)

// Coupon history transaction types.
const (
	HistoryCharge = "charge"
	HistoryUse    = "use"
	HistoryRefund = "refund"
	HistoryManual = "manual"
	HistoryEdit   = "edit"
)

// couponValidityMonths maps a coupon size in hours to its validity in months.
var couponValidityMonths = map[int]int{
	10:  1,
	20:  2,
	50:  2,
	100: 3,
}

// CouponValidityMonths returns how long a coupon of the given size stays valid.
func CouponValidityMonths(couponType int) (int, bool) {
	m, ok := couponValidityMonths[couponType]
	return m, ok
}

// ValidCategory reports whether s is a known piano category.
func ValidCategory(s string) bool {
	return s == CategoryDomestic || s == CategoryImport
}

// RoomCategory derives the piano category of a room from its name.
func RoomCategory(roomName string) string {
	n := strings.ToLower(roomName)
	if strings.Contains(n, "수입") || strings.Contains(n, "import") {
		return CategoryImport
	}
	return CategoryDomestic
}

// CouponCustomer is a prepaid customer holding a minute balance for one piano category.
// swagger:model CouponCustomer
type CouponCustomer struct {
	ID               int64     `json:"id"`
	CustomerName     string    `json:"customer_name"`
	PhoneNumber      string    `json:"phone_number"`
	PianoCategory    string    `json:"piano_category"`
	CouponType       int       `json:"coupon_type"`
	RegisteredAt     Date      `json:"coupon_registered_at"`
	ExpiresAt        Date      `json:"coupon_expires_at"`
	Status           string    `json:"coupon_status"`
	RemainingMinutes int       `json:"remaining_time"`
	RemainingLabel   string    `json:"remaining_label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsExpired reports whether the coupon can no longer be used on today.
func (c *CouponCustomer) IsExpired(today Date) bool {
	if c.Status == CouponExpired {
		return true
	}
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(today)
}

// RefreshExpiry flips the status to expired once today is past the expiry date.
// It reports whether the status changed.
func (c *CouponCustomer) RefreshExpiry(today Date) bool {
	if c.Status != CouponExpired && !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(today) {
		c.Status = CouponExpired
		return true
	}
	return false
}

// Charge renews the coupon on today and adds minutes to the balance.
func (c *CouponCustomer) Charge(couponType, minutes int, today Date) error {
	months, ok := CouponValidityMonths(couponType)
	if !ok {
		return fmt.Errorf("%w: coupon_type must be 10, 20, 50 or 100", ErrInvalidInput)
	}
	c.CouponType = couponType
	c.RegisteredAt = today
	c.ExpiresAt = today.AddMonths(months)
	c.Status = CouponActive
	c.RemainingMinutes += minutes
	return nil
}

// CouponHistory is one balance movement of a coupon customer.
// swagger:model CouponHistory
type CouponHistory struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	ReservationID    *int64    `json:"reservation_id"`
	CustomerName     string    `json:"customer_name"`
	RoomName         string    `json:"room_name"`
	TransactionDate  Date      `json:"transaction_date"`
	StartTime        Clock     `json:"start_time"`
	EndTime          Clock     `json:"end_time"`
	RemainingMinutes int       `json:"remaining_time"`
	DeltaMinutes     int       `json:"charged_or_used_time"`
	TransactionType  string    `json:"transaction_type"`
	Reason           string    `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// UsageWindow renders "date start ~ end" for histories tied to a booking, "-" otherwise.
func (h *CouponHistory) UsageWindow() string {
	if !h.StartTime.Valid || !h.EndTime.Valid {
		return "-"
	}
	return fmt.Sprintf("%s %s ~ %s", h.TransactionDate, h.StartTime, h.EndTime)
}

// ChargeRequest registers a new coupon customer or tops up an existing one.
type ChargeRequest struct {
	CustomerName   string
	PhoneNumber    string
	PianoCategory  string
	CouponType     int
	ChargedMinutes int
}

// ChargeResult reports what a ChargeRequest did.
type ChargeResult struct {
	Customer      *CouponCustomer `json:"customer"`
	History       *CouponHistory  `json:"history"`
	IsNewCustomer bool            `json:"is_new_customer"`
}

// CouponCustomerUpdate holds the optional fields of a coupon customer PATCH.
type CouponCustomerUpdate struct {
	CustomerName     *string
	PhoneNumber      *string
	ExpiresAt        *Date
	RemainingMinutes *int
	Reason           string
}

// BulkSMSResult reports a bulk coupon SMS run.
type BulkSMSResult struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

// CouponRepository defines storage for coupon customers and their history.
type CouponRepository interface {
	Create(ctx context.Context, c *CouponCustomer) error
	GetByID(ctx context.Context, id int64) (*CouponCustomer, error)
	GetByPhoneAndCategory(ctx context.Context, phone, category string) (*CouponCustomer, error)
	List(ctx context.Context, filter ListFilter, params PaginationParams) ([]*CouponCustomer, int, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*CouponCustomer, error)
	Update(ctx context.Context, c *CouponCustomer) error
	Delete(ctx context.Context, id int64) error
	// ExpireBefore marks active coupons whose expiry is before today as expired and returns how many changed.
	ExpireBefore(ctx context.Context, today Date) (int, error)
	CreateHistory(ctx context.Context, h *CouponHistory) error
	// ListHistory returns the customer's history, newest first.
	ListHistory(ctx context.Context, customerID int64) ([]*CouponHistory, error)
}

// CouponService defines coupon customer use cases.
type CouponService interface {
	ListCustomers(ctx context.Context, filter ListFilter, params PaginationParams) ([]*CouponCustomer, int, error)
	RegisterOrCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	UpdateCustomer(ctx context.Context, id int64, update CouponCustomerUpdate) (*CouponCustomer, error)
	GetHistory(ctx context.Context, id int64) (*CouponCustomer, []*CouponHistory, error)
	DeleteCustomer(ctx context.Context, id int64) error
	SendBulkSMS(ctx context.Context, category, message string) (*BulkSMSResult, error)
	ExpireCoupons(ctx context.Context) (int, error)
}
