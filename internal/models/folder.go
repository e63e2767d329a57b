package models

// InvoiceFolder is a hierarchical container for invoices. A folder may
// carry billing defaults that quick-created invoices inside it inherit.
type InvoiceFolder struct {
	ID       int64  `json:"id"`
	OwnerID  int64  `json:"owner_id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"` // nil = top level

	DefaultHourlyRate   *float64 `json:"default_hourly_rate,omitempty"`
	DefaultCurrency     string   `json:"default_currency,omitempty"`
	DefaultPaymentTerms string   `json:"default_payment_terms,omitempty"`
	DefaultJobTitle     string   `json:"default_job_title,omitempty"`
	NumberPrefix        string   `json:"number_prefix,omitempty"`

	TagIDs    []int64 `json:"tag_ids"`
	Locked    bool    `json:"locked"`
	DeletedAt *int64  `json:"deleted_at,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// CreateFolderRequest is the request body for creating a folder.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`

	DefaultHourlyRate   *float64 `json:"default_hourly_rate"`
	DefaultCurrency     string   `json:"default_currency"`
	DefaultPaymentTerms string   `json:"default_payment_terms"`
	DefaultJobTitle     string   `json:"default_job_title"`
	NumberPrefix        string   `json:"number_prefix"`
	TagIDs              []int64  `json:"tag_ids"`
}

// UpdateFolderRequest is a partial patch; nil fields are left untouched.
// Setting ClearParent moves the folder to the top level.
type UpdateFolderRequest struct {
	Name        *string `json:"name"`
	ParentID    *int64  `json:"parent_id"`
	ClearParent bool    `json:"clear_parent"`

	DefaultHourlyRate   *float64 `json:"default_hourly_rate"`
	DefaultCurrency     *string  `json:"default_currency"`
	DefaultPaymentTerms *string  `json:"default_payment_terms"`
	DefaultJobTitle     *string  `json:"default_job_title"`
	NumberPrefix        *string  `json:"number_prefix"`
	TagIDs              *[]int64 `json:"tag_ids"`
	Locked              *bool    `json:"locked"`
}
