package models

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft          InvoiceStatus = "DRAFT"
	StatusToSend         InvoiceStatus = "TO_SEND"
	StatusSent           InvoiceStatus = "SENT"
	StatusViewed         InvoiceStatus = "VIEWED"
	StatusPartialPayment InvoiceStatus = "PARTIAL_PAYMENT"
	StatusPaid           InvoiceStatus = "PAID"
	StatusOverdue        InvoiceStatus = "OVERDUE"
	StatusCancelled      InvoiceStatus = "CANCELLED"
	StatusRefunded       InvoiceStatus = "REFUNDED"
)

var validStatuses = map[InvoiceStatus]bool{
	StatusDraft:          true,
	StatusToSend:         true,
	StatusSent:           true,
	StatusViewed:         true,
	StatusPartialPayment: true,
	StatusPaid:           true,
	StatusOverdue:        true,
	StatusCancelled:      true,
	StatusRefunded:       true,
}

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	return validStatuses[s]
}

// DailyWorkHours is one calendar day inside an invoice's billing period.
// Hours use 0.5 granularity; weekend days default to isWorkday=false.
type DailyWorkHours struct {
	Date      string  `json:"date"` // "2006-01-02"
	Hours     float64 `json:"hours"`
	IsWorkday bool    `json:"is_workday"`
	Notes     string  `json:"notes,omitempty"`
}

// LineItem is a free-form billable row. Amount is always recomputed from
// quantity and unit price before totals are derived; a stored amount is
// never trusted.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// StatusChange is one entry of an invoice's embedded status history.
type StatusChange struct {
	Status    InvoiceStatus `json:"status"`
	ChangedAt string        `json:"changed_at"` // ISO-8601 datetime
	Note      string        `json:"note,omitempty"`
}

// Party identifies the sender or recipient printed on an invoice.
type Party struct {
	Name     string `json:"name"`
	JobTitle string `json:"job_title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	TaxID    string `json:"tax_id,omitempty"`
}

// Invoice is the full invoice document. Work hours, line items, status
// history and tag ids live in JSONB columns and are read/written as whole
// arrays, mirroring how the form edits them.
type Invoice struct {
	ID            int64          `json:"id"`
	OwnerID       int64          `json:"owner_id"`
	InvoiceNumber string         `json:"invoice_number"`
	Status        InvoiceStatus  `json:"status"`
	StatusHistory []StatusChange `json:"status_history"`

	IssueDate   string `json:"issue_date"`
	DueDate     string `json:"due_date"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	From Party `json:"from"`
	To   Party `json:"to"`

	HourlyRate         float64          `json:"hourly_rate"`
	DefaultHoursPerDay float64          `json:"default_hours_per_day"`
	WorkHours          []DailyWorkHours `json:"work_hours"`
	LineItems          []LineItem       `json:"line_items"`

	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discount_amount"`
	TaxAmount       float64 `json:"tax_amount"`
	TotalAmount     float64 `json:"total_amount"`
	TotalDays       int     `json:"total_days"`
	TotalHours      float64 `json:"total_hours"`

	Currency         string `json:"currency"`
	PaymentTerms     string `json:"payment_terms"`
	PageSize         string `json:"page_size"` // "A4" or "Letter"
	BackgroundDesign string `json:"background_design,omitempty"`

	FolderID *int64  `json:"folder_id"` // nil = unfiled
	TagIDs   []int64 `json:"tag_ids"`

	Archived  bool   `json:"archived"`
	Locked    bool   `json:"locked"`
	DeletedAt *int64 `json:"deleted_at,omitempty"` // Unix millis tombstone
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// InvoiceSummary is the list-view projection of an invoice.
type InvoiceSummary struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     string        `json:"issue_date"`
	DueDate       string        `json:"due_date"`
	ToName        string        `json:"to_name"`
	TotalAmount   float64       `json:"total_amount"`
	Currency      string        `json:"currency"`
	FolderID      *int64        `json:"folder_id"`
	TagIDs        []int64       `json:"tag_ids"`
	Archived      bool          `json:"archived"`
	Locked        bool          `json:"locked"`
	UpdatedAt     int64         `json:"updated_at"`
}

// CreateInvoiceRequest is the request body for creating an invoice.
// Zero-value fields fall back to folder billing defaults, then to
// server defaults.
type CreateInvoiceRequest struct {
	InvoiceNumber      string           `json:"invoice_number"`
	IssueDate          string           `json:"issue_date"`
	DueDate            string           `json:"due_date"`
	PeriodStart        string           `json:"period_start"`
	PeriodEnd          string           `json:"period_end"`
	From               Party            `json:"from"`
	To                 Party            `json:"to"`
	HourlyRate         float64          `json:"hourly_rate"`
	DefaultHoursPerDay float64          `json:"default_hours_per_day"`
	WorkHours          []DailyWorkHours `json:"work_hours"`
	LineItems          []LineItem       `json:"line_items"`
	DiscountPercent    float64          `json:"discount_percent"`
	TaxPercent         float64          `json:"tax_percent"`
	Currency           string           `json:"currency"`
	PaymentTerms       string           `json:"payment_terms"`
	PageSize           string           `json:"page_size"`
	BackgroundDesign   string           `json:"background_design"`
	FolderID           *int64           `json:"folder_id"`
	TagIDs             []int64          `json:"tag_ids"`
}

// UpdateInvoiceRequest is a partial patch; nil fields are left untouched.
type UpdateInvoiceRequest struct {
	InvoiceNumber      *string           `json:"invoice_number"`
	IssueDate          *string           `json:"issue_date"`
	DueDate            *string           `json:"due_date"`
	PeriodStart        *string           `json:"period_start"`
	PeriodEnd          *string           `json:"period_end"`
	From               *Party            `json:"from"`
	To                 *Party            `json:"to"`
	HourlyRate         *float64          `json:"hourly_rate"`
	DefaultHoursPerDay *float64          `json:"default_hours_per_day"`
	WorkHours          *[]DailyWorkHours `json:"work_hours"`
	LineItems          *[]LineItem       `json:"line_items"`
	DiscountPercent    *float64          `json:"discount_percent"`
	TaxPercent         *float64          `json:"tax_percent"`
	Currency           *string           `json:"currency"`
	PaymentTerms       *string           `json:"payment_terms"`
	PageSize           *string           `json:"page_size"`
	BackgroundDesign   *string           `json:"background_design"`
	FolderID           *int64            `json:"folder_id"`
	ClearFolder        bool              `json:"clear_folder"`
	TagIDs             *[]int64          `json:"tag_ids"`
	Locked             *bool             `json:"locked"`
}

// ChangeStatusRequest moves an invoice to a new lifecycle state.
type ChangeStatusRequest struct {
	Status InvoiceStatus `json:"status"`
	Note   string        `json:"note"`
}

// NumberCheckResponse reports folder-scoped availability of an exact
// invoice-number string.
type NumberCheckResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	Available     bool   `json:"available"`
}
