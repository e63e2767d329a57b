package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/billing"
	"invoice-backend/internal/cache"
	"invoice-backend/internal/config"
	"invoice-backend/internal/events"
	"invoice-backend/internal/metrics"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

const duplicateNumberMsg = "invoice number already in use in this folder"

type InvoiceService struct {
	Repo       *repositories.InvoiceRepository
	Folders    *repositories.FolderRepository
	Tags       *repositories.TagRepository
	StatusLogs *repositories.StatusLogRepository
	Hub        *events.Hub
	cfg        *config.Config
}

func NewInvoiceService(
	repo *repositories.InvoiceRepository,
	folders *repositories.FolderRepository,
	tags *repositories.TagRepository,
	statusLogs *repositories.StatusLogRepository,
	hub *events.Hub,
	cfg *config.Config,
) *InvoiceService {
	return &InvoiceService{
		Repo:       repo,
		Folders:    folders,
		Tags:       tags,
		StatusLogs: statusLogs,
		Hub:        hub,
		cfg:        cfg,
	}
}

// CreateInvoice builds and persists an invoice. Billing defaults cascade
// from the target folder, then from server config. Totals are always
// recomputed server-side; client-sent amounts are ignored.
func (s *InvoiceService) CreateInvoice(ctx context.Context, ownerID int64, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	inv := &models.Invoice{
		OwnerID:            ownerID,
		InvoiceNumber:      req.InvoiceNumber,
		Status:             models.StatusDraft,
		IssueDate:          req.IssueDate,
		DueDate:            req.DueDate,
		PeriodStart:        req.PeriodStart,
		PeriodEnd:          req.PeriodEnd,
		From:               req.From,
		To:                 req.To,
		HourlyRate:         req.HourlyRate,
		DefaultHoursPerDay: req.DefaultHoursPerDay,
		WorkHours:          req.WorkHours,
		LineItems:          req.LineItems,
		DiscountPercent:    req.DiscountPercent,
		TaxPercent:         req.TaxPercent,
		Currency:           req.Currency,
		PaymentTerms:       req.PaymentTerms,
		PageSize:           req.PageSize,
		BackgroundDesign:   req.BackgroundDesign,
		FolderID:           req.FolderID,
		TagIDs:             req.TagIDs,
	}

	var folder *models.InvoiceFolder
	if inv.FolderID != nil {
		var err error
		folder, err = s.Folders.Get(ctx, ownerID, *inv.FolderID)
		if err != nil {
			return nil, mapRepoError(err, "")
		}
		s.applyFolderDefaults(inv, folder)
	}
	s.applyServerDefaults(inv)

	if err := s.validateDates(inv); err != nil {
		return nil, err
	}
	if err := s.validateTagsForInvoice(ctx, ownerID, inv.TagIDs); err != nil {
		return nil, err
	}

	// Generate the work-hours calendar when the form sent a period but no
	// per-day entries yet.
	if len(inv.WorkHours) == 0 && inv.PeriodStart != "" && inv.PeriodEnd != "" {
		hours, err := billing.GenerateWorkHours(inv.PeriodStart, inv.PeriodEnd, inv.DefaultHoursPerDay)
		if err != nil {
			return nil, apperr.Validation("%s", err.Error())
		}
		inv.WorkHours = hours
	}

	if inv.InvoiceNumber == "" {
		numbers, err := s.Repo.NumbersInScope(ctx, ownerID, inv.FolderID)
		if err != nil {
			return nil, err
		}
		prefix := ""
		if folder != nil {
			prefix = folder.NumberPrefix
		}
		inv.InvoiceNumber = billing.NextInvoiceNumber(numbers, prefix)
	}

	s.normalize(inv)
	inv.StatusHistory = []models.StatusChange{{
		Status:    models.StatusDraft,
		ChangedAt: time.Now().Format(time.RFC3339),
	}}

	if err := s.Repo.Create(ctx, inv); err != nil {
		if repositories.IsUniqueViolation(err) {
			metrics.NumberCollisionsTotal.Inc()
		}
		return nil, mapRepoError(err, duplicateNumberMsg)
	}

	metrics.InvoicesCreatedTotal.Inc()
	cache.InvalidateDashboardStats(ctx, ownerID)
	return inv, nil
}

func (s *InvoiceService) applyFolderDefaults(inv *models.Invoice, folder *models.InvoiceFolder) {
	if inv.HourlyRate == 0 && folder.DefaultHourlyRate != nil {
		inv.HourlyRate = *folder.DefaultHourlyRate
	}
	if inv.Currency == "" {
		inv.Currency = folder.DefaultCurrency
	}
	if inv.PaymentTerms == "" {
		inv.PaymentTerms = folder.DefaultPaymentTerms
	}
	if inv.From.JobTitle == "" {
		inv.From.JobTitle = folder.DefaultJobTitle
	}
}

func (s *InvoiceService) applyServerDefaults(inv *models.Invoice) {
	if inv.Currency == "" {
		inv.Currency = s.cfg.Invoice.DefaultCurrency
	}
	if inv.PaymentTerms == "" {
		inv.PaymentTerms = s.cfg.Invoice.DefaultPaymentTerms
	}
	if inv.PageSize == "" {
		inv.PageSize = s.cfg.Invoice.DefaultPageSize
	}
	if inv.DefaultHoursPerDay == 0 {
		inv.DefaultHoursPerDay = s.cfg.Invoice.DefaultHoursPerDay
	}
	if inv.TagIDs == nil {
		inv.TagIDs = []int64{}
	}
}

func (s *InvoiceService) validateDates(inv *models.Invoice) error {
	for _, d := range []struct{ name, value string }{
		{"issue_date", inv.IssueDate},
		{"due_date", inv.DueDate},
		{"period_start", inv.PeriodStart},
		{"period_end", inv.PeriodEnd},
	} {
		if d.value == "" {
			continue
		}
		if _, err := timeutil.ParseDate(d.value); err != nil {
			return apperr.Validation("invalid %s %q, expected yyyy-MM-dd", d.name, d.value)
		}
	}
	return nil
}

func (s *InvoiceService) validateTagsForInvoice(ctx context.Context, ownerID int64, tagIDs []int64) error {
	for _, id := range tagIDs {
		tag, err := s.Tags.Get(ctx, ownerID, id)
		if err != nil {
			return mapRepoError(err, "")
		}
		if !tag.Scope.AppliesToInvoice() {
			return apperr.Validation("tag %q is folder-only and cannot be attached to an invoice", tag.Name)
		}
	}
	return nil
}

// normalize assigns ids to new line items and recomputes every derived
// field from the ground truth (hours, rates, quantities).
func (s *InvoiceService) normalize(inv *models.Invoice) {
	for i := range inv.LineItems {
		if inv.LineItems[i].ID == "" {
			inv.LineItems[i].ID = uuid.NewString()
		}
	}
	inv.LineItems = billing.RecomputeLineItems(inv.LineItems)

	totals := billing.Aggregate(inv.WorkHours, inv.HourlyRate, inv.LineItems,
		inv.DiscountPercent, inv.TaxPercent)
	inv.Subtotal = totals.Subtotal
	inv.DiscountAmount = totals.DiscountAmount
	inv.TaxAmount = totals.TaxAmount
	inv.TotalAmount = totals.TotalAmount
	inv.TotalDays = totals.TotalDays
	inv.TotalHours = totals.TotalHours
}

// GetInvoice returns a single owned, non-deleted invoice.
func (s *InvoiceService) GetInvoice(ctx context.Context, ownerID, id int64) (*models.Invoice, error) {
	inv, err := s.Repo.Get(ctx, ownerID, id)
	return inv, mapRepoError(err, "")
}

// ListInvoices returns owner-scoped summaries per the filter.
func (s *InvoiceService) ListInvoices(ctx context.Context, ownerID int64, filter repositories.InvoiceFilter) ([]*models.InvoiceSummary, error) {
	return s.Repo.List(ctx, ownerID, filter)
}

// UpdateInvoice applies a partial patch and recomputes totals. Locked
// invoices reject every change except unlocking.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, ownerID, id int64, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	inv, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}

	if inv.Locked {
		if req.Locked == nil || *req.Locked {
			return nil, apperr.Validation("invoice is locked")
		}
		inv.Locked = false
	} else if req.Locked != nil {
		inv.Locked = *req.Locked
	}

	if req.InvoiceNumber != nil {
		if *req.InvoiceNumber == "" {
			return nil, apperr.Validation("invoice number cannot be empty")
		}
		inv.InvoiceNumber = *req.InvoiceNumber
	}
	if req.IssueDate != nil {
		inv.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		inv.DueDate = *req.DueDate
	}
	if req.PeriodStart != nil {
		inv.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		inv.PeriodEnd = *req.PeriodEnd
	}
	if req.From != nil {
		inv.From = *req.From
	}
	if req.To != nil {
		inv.To = *req.To
	}
	if req.HourlyRate != nil {
		inv.HourlyRate = *req.HourlyRate
	}
	if req.DefaultHoursPerDay != nil {
		inv.DefaultHoursPerDay = *req.DefaultHoursPerDay
	}
	if req.WorkHours != nil {
		inv.WorkHours = *req.WorkHours
	}
	if req.LineItems != nil {
		inv.LineItems = *req.LineItems
	}
	if req.DiscountPercent != nil {
		inv.DiscountPercent = *req.DiscountPercent
	}
	if req.TaxPercent != nil {
		inv.TaxPercent = *req.TaxPercent
	}
	if req.Currency != nil {
		inv.Currency = *req.Currency
	}
	if req.PaymentTerms != nil {
		inv.PaymentTerms = *req.PaymentTerms
	}
	if req.PageSize != nil {
		inv.PageSize = *req.PageSize
	}
	if req.BackgroundDesign != nil {
		inv.BackgroundDesign = *req.BackgroundDesign
	}
	if req.ClearFolder {
		inv.FolderID = nil
	} else if req.FolderID != nil {
		if _, err := s.Folders.Get(ctx, ownerID, *req.FolderID); err != nil {
			return nil, mapRepoError(err, "")
		}
		inv.FolderID = req.FolderID
	}
	if req.TagIDs != nil {
		if err := s.validateTagsForInvoice(ctx, ownerID, *req.TagIDs); err != nil {
			return nil, err
		}
		inv.TagIDs = *req.TagIDs
	}

	if err := s.validateDates(inv); err != nil {
		return nil, err
	}
	s.normalize(inv)

	if err := s.Repo.Update(ctx, inv); err != nil {
		if repositories.IsUniqueViolation(err) {
			metrics.NumberCollisionsTotal.Inc()
		}
		return nil, mapRepoError(err, duplicateNumberMsg)
	}

	cache.InvalidateDashboardStats(ctx, ownerID)
	return inv, nil
}

// DeleteInvoice tombstones an invoice.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, ownerID, id int64) error {
	inv, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return mapRepoError(err, "")
	}
	if inv.Locked {
		return apperr.Validation("invoice is locked")
	}
	if err := s.Repo.SoftDelete(ctx, ownerID, id); err != nil {
		return mapRepoError(err, "")
	}

	cache.InvalidateDashboardStats(ctx, ownerID)
	s.Hub.Publish(ownerID, events.Event{
		Type:          "invoice_deleted",
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		At:            timeutil.NowMillis(),
	})
	return nil
}

// RestoreInvoice clears a tombstone. If the number was taken in the scope
// meanwhile, the unique index rejects the restore.
func (s *InvoiceService) RestoreInvoice(ctx context.Context, ownerID, id int64) (*models.Invoice, error) {
	if _, err := s.Repo.GetDeleted(ctx, ownerID, id); err != nil {
		return nil, mapRepoError(err, "")
	}
	if err := s.Repo.Restore(ctx, ownerID, id); err != nil {
		return nil, mapRepoError(err, duplicateNumberMsg)
	}
	cache.InvalidateDashboardStats(ctx, ownerID)
	inv, err := s.Repo.Get(ctx, ownerID, id)
	return inv, mapRepoError(err, "")
}

// DuplicateInvoice copies an invoice into the same folder scope with a
// freshly allocated number and a clean draft lifecycle.
func (s *InvoiceService) DuplicateInvoice(ctx context.Context, ownerID, id int64) (*models.Invoice, error) {
	src, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}

	numbers, err := s.Repo.NumbersInScope(ctx, ownerID, src.FolderID)
	if err != nil {
		return nil, err
	}
	prefix := ""
	if src.FolderID != nil {
		if folder, err := s.Folders.Get(ctx, ownerID, *src.FolderID); err == nil {
			prefix = folder.NumberPrefix
		}
	}

	dup := *src
	dup.ID = 0
	dup.InvoiceNumber = billing.NextInvoiceNumber(numbers, prefix)
	dup.Status = models.StatusDraft
	dup.StatusHistory = []models.StatusChange{{
		Status:    models.StatusDraft,
		ChangedAt: time.Now().Format(time.RFC3339),
	}}
	dup.Archived = false
	dup.Locked = false
	dup.DeletedAt = nil

	if err := s.Repo.Create(ctx, &dup); err != nil {
		return nil, mapRepoError(err, duplicateNumberMsg)
	}
	metrics.InvoicesCreatedTotal.Inc()
	cache.InvalidateDashboardStats(ctx, ownerID)
	return &dup, nil
}

// ChangeStatus moves an invoice to a new lifecycle state, appending to the
// embedded history and the cross-invoice audit log, then notifies the feed.
func (s *InvoiceService) ChangeStatus(ctx context.Context, ownerID, id int64, req *models.ChangeStatusRequest) (*models.Invoice, error) {
	if !req.Status.Valid() {
		return nil, apperr.Validation("unknown status %q", req.Status)
	}

	inv, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	if inv.Locked {
		return nil, apperr.Validation("invoice is locked")
	}
	if inv.Status == req.Status {
		return inv, nil
	}

	previous := inv.Status
	now := timeutil.NowMillis()

	inv.Status = req.Status
	inv.StatusHistory = append(inv.StatusHistory, models.StatusChange{
		Status:    req.Status,
		ChangedAt: time.Now().Format(time.RFC3339),
		Note:      req.Note,
	})

	if err := s.Repo.Update(ctx, inv); err != nil {
		return nil, mapRepoError(err, "")
	}

	if err := s.StatusLogs.Insert(ctx, &models.StatusLog{
		OwnerID:        ownerID,
		InvoiceID:      inv.ID,
		PreviousStatus: previous,
		NewStatus:      req.Status,
		ChangedAt:      now,
		Notes:          req.Note,
	}); err != nil {
		// The invoice transition already committed; the audit row is
		// best effort here rather than rolling back a user-visible change.
		return inv, err
	}

	cache.InvalidateDashboardStats(ctx, ownerID)
	s.Hub.Publish(ownerID, events.Event{
		Type:           "status_changed",
		InvoiceID:      inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		PreviousStatus: previous,
		NewStatus:      req.Status,
		At:             now,
	})
	return inv, nil
}

// NextNumber suggests the next invoice number for a folder scope.
func (s *InvoiceService) NextNumber(ctx context.Context, ownerID int64, folderID *int64) (string, error) {
	prefix := ""
	if folderID != nil {
		folder, err := s.Folders.Get(ctx, ownerID, *folderID)
		if err != nil {
			return "", mapRepoError(err, "")
		}
		prefix = folder.NumberPrefix
	}

	numbers, err := s.Repo.NumbersInScope(ctx, ownerID, folderID)
	if err != nil {
		return "", err
	}
	return billing.NextInvoiceNumber(numbers, prefix), nil
}

// CheckNumber reports exact-string availability within a folder scope.
func (s *InvoiceService) CheckNumber(ctx context.Context, ownerID int64, folderID *int64, number string) (*models.NumberCheckResponse, error) {
	exists, err := s.Repo.NumberExists(ctx, ownerID, folderID, number)
	if err != nil {
		return nil, err
	}
	return &models.NumberCheckResponse{InvoiceNumber: number, Available: !exists}, nil
}

// NextPeriod derives the next billing window for a folder scope: the batch
// following the latest invoice's period end, or the current month's 1st
// batch when the scope has no invoices yet.
func (s *InvoiceService) NextPeriod(ctx context.Context, ownerID int64, folderID *int64) (billing.Period, error) {
	latest, err := s.Repo.LatestPeriodEnd(ctx, ownerID, folderID)
	if err != nil {
		return billing.Period{}, err
	}
	if latest == "" {
		return billing.CurrentPeriod(time.Now()), nil
	}

	end, err := timeutil.ParseDate(latest)
	if err != nil {
		// A malformed stored date should not wedge period rollover.
		return billing.CurrentPeriod(time.Now()), nil
	}
	return billing.NextPeriod(end), nil
}

// GenerateWorkHours expands a period into per-day records for the form.
func (s *InvoiceService) GenerateWorkHours(start, end string, hoursPerDay float64) ([]models.DailyWorkHours, error) {
	if hoursPerDay == 0 {
		hoursPerDay = s.cfg.Invoice.DefaultHoursPerDay
	}
	records, err := billing.GenerateWorkHours(start, end, hoursPerDay)
	if err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	return records, nil
}
