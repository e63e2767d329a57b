package models

// Bulk operations are best-effort: each id is evaluated independently and
// failures are tallied instead of aborting the batch.

type BulkMoveRequest struct {
	IDs      []int64 `json:"ids"`
	FolderID *int64  `json:"folder_id"` // nil = unfile
}

type BulkArchiveRequest struct {
	IDs      []int64 `json:"ids"`
	Archived bool    `json:"archived"`
}

type BulkStatusRequest struct {
	IDs    []int64       `json:"ids"`
	Status InvoiceStatus `json:"status"`
	Note   string        `json:"note"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type BulkError struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type BulkResult struct {
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Errors    []BulkError `json:"errors,omitempty"`
}

// Record tallies the outcome of one item.
func (r *BulkResult) Record(id int64, err error) {
	if err == nil {
		r.Succeeded++
		return
	}
	r.Failed++
	r.Errors = append(r.Errors, BulkError{ID: id, Reason: err.Error()})
}
