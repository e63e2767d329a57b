package services

import (
	"context"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/cache"
	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

// Bulk operations evaluate every id independently: a locked, missing or
// foreign invoice fails its own slot without aborting the rest.

// BulkMove reassigns invoices to a folder (nil = unfile).
func (s *InvoiceService) BulkMove(ctx context.Context, ownerID int64, req *models.BulkMoveRequest) *models.BulkResult {
	if req.FolderID != nil {
		if folder, err := s.Folders.Get(ctx, ownerID, *req.FolderID); err != nil || folder.Locked {
			result := &models.BulkResult{}
			reason := apperr.ErrNotFound
			if err == nil {
				reason = apperr.Validation("target folder is locked")
			}
			for _, id := range req.IDs {
				result.Record(id, reason)
			}
			return result
		}
	}

	result := &models.BulkResult{}
	for _, id := range req.IDs {
		result.Record(id, s.moveOne(ctx, ownerID, id, req.FolderID))
	}
	cache.InvalidateDashboardStats(ctx, ownerID)
	return result
}

func (s *InvoiceService) moveOne(ctx context.Context, ownerID, id int64, folderID *int64) error {
	inv, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return mapRepoError(err, "")
	}
	if inv.Locked {
		return apperr.Validation("invoice is locked")
	}
	inv.FolderID = folderID
	// Moving can collide with a same-numbered invoice in the target scope.
	return mapRepoError(s.Repo.Update(ctx, inv), duplicateNumberMsg)
}

// BulkArchive sets or clears the archived flag.
func (s *InvoiceService) BulkArchive(ctx context.Context, ownerID int64, req *models.BulkArchiveRequest) *models.BulkResult {
	result := &models.BulkResult{}
	for _, id := range req.IDs {
		result.Record(id, func() error {
			inv, err := s.Repo.Get(ctx, ownerID, id)
			if err != nil {
				return mapRepoError(err, "")
			}
			if inv.Locked {
				return apperr.Validation("invoice is locked")
			}
			inv.Archived = req.Archived
			return mapRepoError(s.Repo.Update(ctx, inv), "")
		}())
	}
	cache.InvalidateDashboardStats(ctx, ownerID)
	return result
}

// BulkStatus applies one status transition to many invoices.
func (s *InvoiceService) BulkStatus(ctx context.Context, ownerID int64, req *models.BulkStatusRequest) *models.BulkResult {
	result := &models.BulkResult{}
	if !req.Status.Valid() {
		reason := apperr.Validation("unknown status %q", req.Status)
		for _, id := range req.IDs {
			result.Record(id, reason)
		}
		return result
	}

	for _, id := range req.IDs {
		_, err := s.ChangeStatus(ctx, ownerID, id, &models.ChangeStatusRequest{
			Status: req.Status,
			Note:   req.Note,
		})
		result.Record(id, err)
	}
	return result
}

// BulkDelete tombstones many invoices.
func (s *InvoiceService) BulkDelete(ctx context.Context, ownerID int64, req *models.BulkDeleteRequest) *models.BulkResult {
	result := &models.BulkResult{}
	for _, id := range req.IDs {
		result.Record(id, s.DeleteInvoice(ctx, ownerID, id))
	}
	return result
}

// DashboardStats is the cached per-owner rollup shown on the invoice list.
type DashboardStats struct {
	StatusCounts     map[models.InvoiceStatus]int `json:"status_counts"`
	OutstandingTotal float64                      `json:"outstanding_total"`
	GeneratedAt      int64                        `json:"generated_at"`
}

// Stats returns the owner's dashboard rollup, served from Redis when warm.
func (s *InvoiceService) Stats(ctx context.Context, ownerID int64) (*DashboardStats, error) {
	var stats DashboardStats
	if cache.GetDashboardStats(ctx, ownerID, &stats) {
		return &stats, nil
	}

	counts, err := s.Repo.StatusCounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.Repo.OutstandingTotal(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats = DashboardStats{
		StatusCounts:     counts,
		OutstandingTotal: outstanding,
		GeneratedAt:      timeutil.NowMillis(),
	}
	cache.SetDashboardStats(ctx, ownerID, &stats)
	return &stats, nil
}
