package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// InvoiceFilter narrows List results. FolderID and Unfiled are mutually
// exclusive; with neither set the whole owner scope is returned.
type InvoiceFilter struct {
	FolderID        *int64
	Unfiled         bool
	IncludeArchived bool
	Status          models.InvoiceStatus
	TagID           int64
}

const invoiceColumns = `id, owner_id, invoice_number, status, status_history,
	issue_date, due_date, period_start, period_end, from_party, to_party,
	hourly_rate, default_hours_per_day, work_hours, line_items,
	discount_percent, tax_percent, subtotal, discount_amount, tax_amount,
	total_amount, total_days, total_hours, currency, payment_terms,
	page_size, background_design, folder_id, tag_ids, archived, locked,
	deleted_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.OwnerID, &inv.InvoiceNumber, &inv.Status,
		&inv.StatusHistory, &inv.IssueDate, &inv.DueDate, &inv.PeriodStart,
		&inv.PeriodEnd, &inv.From, &inv.To, &inv.HourlyRate,
		&inv.DefaultHoursPerDay, &inv.WorkHours, &inv.LineItems,
		&inv.DiscountPercent, &inv.TaxPercent, &inv.Subtotal,
		&inv.DiscountAmount, &inv.TaxAmount, &inv.TotalAmount, &inv.TotalDays,
		&inv.TotalHours, &inv.Currency, &inv.PaymentTerms, &inv.PageSize,
		&inv.BackgroundDesign, &inv.FolderID, &inv.TagIDs, &inv.Archived,
		&inv.Locked, &inv.DeletedAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts a new invoice. A unique-violation error here means the
// invoice number is already taken in the folder scope.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	now := timeutil.NowMillis()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return r.DB.QueryRow(ctx,
		`INSERT INTO invoices(owner_id, invoice_number, status, status_history,
			issue_date, due_date, period_start, period_end, from_party, to_party,
			hourly_rate, default_hours_per_day, work_hours, line_items,
			discount_percent, tax_percent, subtotal, discount_amount, tax_amount,
			total_amount, total_days, total_hours, currency, payment_terms,
			page_size, background_design, folder_id, tag_ids, archived, locked,
			created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32)
		 RETURNING id`,
		inv.OwnerID, inv.InvoiceNumber, inv.Status, inv.StatusHistory,
		inv.IssueDate, inv.DueDate, inv.PeriodStart, inv.PeriodEnd,
		inv.From, inv.To, inv.HourlyRate, inv.DefaultHoursPerDay,
		inv.WorkHours, inv.LineItems, inv.DiscountPercent, inv.TaxPercent,
		inv.Subtotal, inv.DiscountAmount, inv.TaxAmount, inv.TotalAmount,
		inv.TotalDays, inv.TotalHours, inv.Currency, inv.PaymentTerms,
		inv.PageSize, inv.BackgroundDesign, inv.FolderID, inv.TagIDs,
		inv.Archived, inv.Locked, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
}

// Get retrieves a non-deleted invoice by id within the owner scope.
// Tombstoned rows read as not found.
func (r *InvoiceRepository) Get(ctx context.Context, ownerID, id int64) (*models.Invoice, error) {
	return scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		 WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`, id, ownerID))
}

// GetDeleted retrieves a tombstoned invoice for restore.
func (r *InvoiceRepository) GetDeleted(ctx context.Context, ownerID, id int64) (*models.Invoice, error) {
	return scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		 WHERE id = $1 AND owner_id = $2 AND deleted_at IS NOT NULL`, id, ownerID))
}

// List returns owner-scoped invoice summaries, never including tombstones
// and excluding archived rows unless asked.
func (r *InvoiceRepository) List(ctx context.Context, ownerID int64, filter InvoiceFilter) ([]*models.InvoiceSummary, error) {
	query := `SELECT id, invoice_number, status, issue_date, due_date,
		to_party->>'name', total_amount, currency, folder_id, tag_ids,
		archived, locked, updated_at
	 FROM invoices WHERE owner_id = $1 AND deleted_at IS NULL`
	args := []interface{}{ownerID}

	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		query += fmt.Sprintf(" AND folder_id = $%d", len(args))
	} else if filter.Unfiled {
		query += " AND folder_id IS NULL"
	}
	if !filter.IncludeArchived {
		query += " AND archived = FALSE"
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.TagID != 0 {
		args = append(args, filter.TagID)
		query += fmt.Sprintf(" AND tag_ids @> to_jsonb($%d::bigint)", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.InvoiceSummary
	for rows.Next() {
		var s models.InvoiceSummary
		err := rows.Scan(&s.ID, &s.InvoiceNumber, &s.Status, &s.IssueDate,
			&s.DueDate, &s.ToName, &s.TotalAmount, &s.Currency, &s.FolderID,
			&s.TagIDs, &s.Archived, &s.Locked, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}

// Update rewrites the full invoice row. A unique-violation error means the
// new invoice number collides within its folder scope.
func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	inv.UpdatedAt = timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoices SET invoice_number=$1, status=$2, status_history=$3,
			issue_date=$4, due_date=$5, period_start=$6, period_end=$7,
			from_party=$8, to_party=$9, hourly_rate=$10, default_hours_per_day=$11,
			work_hours=$12, line_items=$13, discount_percent=$14, tax_percent=$15,
			subtotal=$16, discount_amount=$17, tax_amount=$18, total_amount=$19,
			total_days=$20, total_hours=$21, currency=$22, payment_terms=$23,
			page_size=$24, background_design=$25, folder_id=$26, tag_ids=$27,
			archived=$28, locked=$29, updated_at=$30
		 WHERE id=$31 AND owner_id=$32 AND deleted_at IS NULL`,
		inv.InvoiceNumber, inv.Status, inv.StatusHistory, inv.IssueDate,
		inv.DueDate, inv.PeriodStart, inv.PeriodEnd, inv.From, inv.To,
		inv.HourlyRate, inv.DefaultHoursPerDay, inv.WorkHours, inv.LineItems,
		inv.DiscountPercent, inv.TaxPercent, inv.Subtotal, inv.DiscountAmount,
		inv.TaxAmount, inv.TotalAmount, inv.TotalDays, inv.TotalHours,
		inv.Currency, inv.PaymentTerms, inv.PageSize, inv.BackgroundDesign,
		inv.FolderID, inv.TagIDs, inv.Archived, inv.Locked, inv.UpdatedAt,
		inv.ID, inv.OwnerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete tombstones an invoice. Already-deleted rows read as not found.
func (r *InvoiceRepository) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoices SET deleted_at=$1, updated_at=$1
		 WHERE id=$2 AND owner_id=$3 AND deleted_at IS NULL`, now, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Restore clears a tombstone. Fails with a unique violation if the number
// was reused in the scope while the invoice was deleted.
func (r *InvoiceRepository) Restore(ctx context.Context, ownerID, id int64) error {
	now := timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoices SET deleted_at=NULL, updated_at=$1
		 WHERE id=$2 AND owner_id=$3 AND deleted_at IS NOT NULL`, now, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// NumbersInScope returns the non-deleted invoice numbers of one folder
// scope (folderID nil = unfiled), the input to the numbering allocator.
func (r *InvoiceRepository) NumbersInScope(ctx context.Context, ownerID int64, folderID *int64) ([]string, error) {
	query := `SELECT invoice_number FROM invoices
		 WHERE owner_id = $1 AND deleted_at IS NULL AND `
	args := []interface{}{ownerID}
	if folderID != nil {
		query += "folder_id = $2"
		args = append(args, *folderID)
	} else {
		query += "folder_id IS NULL"
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// NumberExists checks exact-string availability of a number within a folder
// scope. This is the UX pre-check; the unique index has the final say.
func (r *InvoiceRepository) NumberExists(ctx context.Context, ownerID int64, folderID *int64, number string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM invoices
		 WHERE owner_id = $1 AND invoice_number = $2 AND deleted_at IS NULL AND `
	args := []interface{}{ownerID, number}
	if folderID != nil {
		query += "folder_id = $3)"
		args = append(args, *folderID)
	} else {
		query += "folder_id IS NULL)"
	}

	var exists bool
	err := r.DB.QueryRow(ctx, query, args...).Scan(&exists)
	return exists, err
}

// LatestPeriodEnd returns the period end of the most recently created
// non-deleted invoice in the scope, or "" when the scope is empty.
func (r *InvoiceRepository) LatestPeriodEnd(ctx context.Context, ownerID int64, folderID *int64) (string, error) {
	query := `SELECT period_end FROM invoices
		 WHERE owner_id = $1 AND deleted_at IS NULL AND period_end <> '' AND `
	args := []interface{}{ownerID}
	if folderID != nil {
		query += "folder_id = $2"
		args = append(args, *folderID)
	} else {
		query += "folder_id IS NULL"
	}
	query += " ORDER BY created_at DESC LIMIT 1"

	var end string
	err := r.DB.QueryRow(ctx, query, args...).Scan(&end)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return end, err
}

// StatusCounts aggregates non-deleted, non-archived invoices by status.
func (r *InvoiceRepository) StatusCounts(ctx context.Context, ownerID int64) (map[models.InvoiceStatus]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT status, COUNT(*) FROM invoices
		 WHERE owner_id = $1 AND deleted_at IS NULL AND archived = FALSE
		 GROUP BY status`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.InvoiceStatus]int)
	for rows.Next() {
		var status models.InvoiceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// OutstandingTotal sums totals of invoices that are issued but not yet
// settled or terminated.
func (r *InvoiceRepository) OutstandingTotal(ctx context.Context, ownerID int64) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM invoices
		 WHERE owner_id = $1 AND deleted_at IS NULL AND archived = FALSE
		 AND status IN ('SENT', 'VIEWED', 'PARTIAL_PAYMENT', 'OVERDUE')`, ownerID,
	).Scan(&total)
	return total, err
}

// StripTag removes a tag id from every invoice of the owner that carries it.
func (r *InvoiceRepository) StripTag(ctx context.Context, ownerID, tagID int64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET tag_ids = (
			SELECT COALESCE(jsonb_agg(elem), '[]'::jsonb)
			FROM jsonb_array_elements(tag_ids) elem
			WHERE elem <> to_jsonb($1::bigint)
		 ), updated_at = $2
		 WHERE owner_id = $3 AND tag_ids @> to_jsonb($1::bigint)`,
		tagID, timeutil.NowMillis(), ownerID)
	return err
}
