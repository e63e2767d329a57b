package models

// ClientProfile is a saved recipient preset the form can drop into the
// "to" party of a new invoice.
type ClientProfile struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`
	Party
	DefaultCurrency     string `json:"default_currency,omitempty"`
	DefaultPaymentTerms string `json:"default_payment_terms,omitempty"`
	DeletedAt           *int64 `json:"deleted_at,omitempty"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
}

// CreateClientProfileRequest is the request body for saving a client preset.
type CreateClientProfileRequest struct {
	Party
	DefaultCurrency     string `json:"default_currency"`
	DefaultPaymentTerms string `json:"default_payment_terms"`
}

// UpdateClientProfileRequest is a partial patch; nil fields are left
// untouched.
type UpdateClientProfileRequest struct {
	Name                *string `json:"name"`
	JobTitle            *string `json:"job_title"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	TaxID               *string `json:"tax_id"`
	DefaultCurrency     *string `json:"default_currency"`
	DefaultPaymentTerms *string `json:"default_payment_terms"`
}
