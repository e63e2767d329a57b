package models

// StatusLog is the cross-invoice audit record of a status transition,
// written alongside the invoice's embedded status history. Kept in its own
// table so reporting queries never have to unnest invoice documents.
type StatusLog struct {
	ID             int64         `json:"id"`
	OwnerID        int64         `json:"owner_id"`
	InvoiceID      int64         `json:"invoice_id"`
	PreviousStatus InvoiceStatus `json:"previous_status"`
	NewStatus      InvoiceStatus `json:"new_status"`
	ChangedAt      int64         `json:"changed_at"` // Unix millis
	Notes          string        `json:"notes,omitempty"`
}
