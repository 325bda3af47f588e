package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Message template codes.
const (
	TemplatePaymentGuide               = "PAYMENT_GUIDE"
	TemplatePaymentGuideExam           = "PAYMENT_GUIDE_EXAM"
	TemplatePaymentGuideAddPerson      = "PAYMENT_GUIDE_ADD_PERSON"
	TemplatePaymentGuideProxy          = "PAYMENT_GUIDE_PROXY"
	TemplatePaymentGuideAddPersonProxy = "PAYMENT_GUIDE_ADD_PERSON_AND_PROXY"
	TemplateConfirmation               = "CONFIRMATION"
	TemplateConfirmationExam           = "CONFIRMATION_EXAM"
	TemplateCouponCancelTime           = "COUPON_CANCEL_TIME"
	TemplateCouponCancelType           = "COUPON_CANCEL_TYPE"
	TemplateNormalCancelConflict       = "NORMAL_CANCEL_CONFLICT"
	TemplateDawnConfirm                = "DAWN_CONFIRM"
)

// examVariants maps a code to the variant used while the studio runs its exam-period policy.
var examVariants = map[string]string{
	TemplatePaymentGuide: TemplatePaymentGuideExam,
	TemplateConfirmation: TemplateConfirmationExam,
}

// TemplateCodeFor returns the exam-period variant of code when examPeriod is set and one exists.
func TemplateCodeFor(code string, examPeriod bool) string {
	if !examPeriod {
		return code
	}
	if v, ok := examVariants[code]; ok {
		return v
	}
	return code
}

// MessageTemplate is an SMS body with {key} placeholders.
// swagger:model MessageTemplate
type MessageTemplate struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultTemplate is the built-in title and content for a code.
type DefaultTemplate struct {
	Code    string `yaml:"code"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// RenderTemplate replaces {key} placeholders with values from ctx.
// Placeholders without a value are kept verbatim so staff can spot them.
func RenderTemplate(text string, ctx map[string]any) string {
	var b strings.Builder
	b.Grow(len(text))
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			b.WriteString(text)
			break
		}
		closing := strings.IndexByte(text[open+1:], '}')
		if closing < 0 {
			b.WriteString(text)
			break
		}
		closing += open + 1
		key := text[open+1 : closing]
		b.WriteString(text[:open])
		if v, ok := ctx[key]; ok && key != "" && !strings.ContainsAny(key, "{ \n") {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(text[open : closing+1])
		}
		text = text[closing+1:]
	}
	return b.String()
}

// StudioInfo is the studio identity substituted into every message.
type StudioInfo struct {
	Name    string
	Bank    string
	Account string
}

// MessageTemplateUpdate holds the optional fields of a template PATCH. The code is immutable.
type MessageTemplateUpdate struct {
	Title    *string
	Content  *string
	IsActive *bool
}

// PreviewRequest asks for a template rendered against a reservation and extra context.
type PreviewRequest struct {
	Code          string
	ReservationID *int64
	Context       map[string]any
}

// MessageTemplateRepository defines storage for message templates.
type MessageTemplateRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*MessageTemplate, int, error)
	GetByID(ctx context.Context, id int64) (*MessageTemplate, error)
	GetActiveByCode(ctx context.Context, code string) (*MessageTemplate, error)
	Update(ctx context.Context, t *MessageTemplate) error
	// CreateIfMissing inserts the template unless its code exists and reports whether a row was created.
	CreateIfMissing(ctx context.Context, t *MessageTemplate) (bool, error)
}

// DefaultTemplateSource provides the built-in templates.
type DefaultTemplateSource interface {
	Defaults() []DefaultTemplate
	Lookup(code string) (DefaultTemplate, bool)
}

// MessageTemplateService defines message template use cases.
type MessageTemplateService interface {
	ListTemplates(ctx context.Context, params PaginationParams) ([]*MessageTemplate, int, error)
	UpdateTemplate(ctx context.Context, id int64, update MessageTemplateUpdate) (*MessageTemplate, error)
	SeedDefaults(ctx context.Context) (int, error)
	Preview(ctx context.Context, req PreviewRequest) (string, error)
	// Render renders the active template for code against a reservation, falling back to the default content.
	Render(ctx context.Context, code string, r *Reservation, extra map[string]any) (string, error)
}
