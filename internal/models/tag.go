package models

// TagScope restricts what kind of entity a tag may be attached to.
type TagScope string

const (
	TagScopeInvoice TagScope = "invoice"
	TagScopeFolder  TagScope = "folder"
	TagScopeBoth    TagScope = "both"
)

// Valid reports whether s is a known tag scope.
func (s TagScope) Valid() bool {
	return s == TagScopeInvoice || s == TagScopeFolder || s == TagScopeBoth
}

// AppliesToInvoice reports whether a tag with this scope may be attached
// to an invoice.
func (s TagScope) AppliesToInvoice() bool {
	return s == TagScopeInvoice || s == TagScopeBoth
}

// AppliesToFolder reports whether a tag with this scope may be attached
// to a folder.
func (s TagScope) AppliesToFolder() bool {
	return s == TagScopeFolder || s == TagScopeBoth
}

// Tag is a named label for invoices and/or folders.
type Tag struct {
	ID        int64    `json:"id"`
	OwnerID   int64    `json:"owner_id"`
	Name      string   `json:"name"`
	Color     string   `json:"color,omitempty"`
	Scope     TagScope `json:"scope"`
	DeletedAt *int64   `json:"deleted_at,omitempty"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Scope TagScope `json:"scope"`
}

// UpdateTagRequest is a partial patch; nil fields are left untouched.
type UpdateTagRequest struct {
	Name  *string   `json:"name"`
	Color *string   `json:"color"`
	Scope *TagScope `json:"scope"`
}
