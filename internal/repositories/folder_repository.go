package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

type FolderRepository struct {
	DB *pgxpool.Pool
}

func NewFolderRepository(db *pgxpool.Pool) *FolderRepository {
	return &FolderRepository{DB: db}
}

const folderColumns = `id, owner_id, name, parent_id, default_hourly_rate,
	default_currency, default_payment_terms, default_job_title, number_prefix,
	tag_ids, locked, deleted_at, created_at, updated_at`

func scanFolder(row pgx.Row) (*models.InvoiceFolder, error) {
	var f models.InvoiceFolder
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.ParentID,
		&f.DefaultHourlyRate, &f.DefaultCurrency, &f.DefaultPaymentTerms,
		&f.DefaultJobTitle, &f.NumberPrefix, &f.TagIDs, &f.Locked,
		&f.DeletedAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new folder
func (r *FolderRepository) Create(ctx context.Context, f *models.InvoiceFolder) error {
	now := timeutil.NowMillis()
	f.CreatedAt = now
	f.UpdatedAt = now
	return r.DB.QueryRow(ctx,
		`INSERT INTO invoice_folders(owner_id, name, parent_id,
			default_hourly_rate, default_currency, default_payment_terms,
			default_job_title, number_prefix, tag_ids, locked, created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING id`,
		f.OwnerID, f.Name, f.ParentID, f.DefaultHourlyRate, f.DefaultCurrency,
		f.DefaultPaymentTerms, f.DefaultJobTitle, f.NumberPrefix, f.TagIDs,
		f.Locked, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID)
}

// Get retrieves a non-deleted folder within the owner scope.
func (r *FolderRepository) Get(ctx context.Context, ownerID, id int64) (*models.InvoiceFolder, error) {
	return scanFolder(r.DB.QueryRow(ctx,
		`SELECT `+folderColumns+` FROM invoice_folders
		 WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`, id, ownerID))
}

// List returns all non-deleted folders of the owner, parents before
// children is not guaranteed; the tree is assembled client-side.
func (r *FolderRepository) List(ctx context.Context, ownerID int64) ([]*models.InvoiceFolder, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+folderColumns+` FROM invoice_folders
		 WHERE owner_id = $1 AND deleted_at IS NULL
		 ORDER BY name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []*models.InvoiceFolder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// Update rewrites the full folder row.
func (r *FolderRepository) Update(ctx context.Context, f *models.InvoiceFolder) error {
	f.UpdatedAt = timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoice_folders SET name=$1, parent_id=$2,
			default_hourly_rate=$3, default_currency=$4,
			default_payment_terms=$5, default_job_title=$6, number_prefix=$7,
			tag_ids=$8, locked=$9, updated_at=$10
		 WHERE id=$11 AND owner_id=$12 AND deleted_at IS NULL`,
		f.Name, f.ParentID, f.DefaultHourlyRate, f.DefaultCurrency,
		f.DefaultPaymentTerms, f.DefaultJobTitle, f.NumberPrefix, f.TagIDs,
		f.Locked, f.UpdatedAt, f.ID, f.OwnerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete tombstones a folder. Invoices keep their folder_id; list
// operations treat references to tombstoned folders as unfiled.
func (r *FolderRepository) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE invoice_folders SET deleted_at=$1, updated_at=$1
		 WHERE id=$2 AND owner_id=$3 AND deleted_at IS NULL`, now, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// HasChildren reports whether any non-deleted folder points at this one.
func (r *FolderRepository) HasChildren(ctx context.Context, ownerID, id int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM invoice_folders
		 WHERE parent_id = $1 AND owner_id = $2 AND deleted_at IS NULL)`,
		id, ownerID).Scan(&exists)
	return exists, err
}

// StripTag removes a tag id from every folder of the owner that carries it.
func (r *FolderRepository) StripTag(ctx context.Context, ownerID, tagID int64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoice_folders SET tag_ids = (
			SELECT COALESCE(jsonb_agg(elem), '[]'::jsonb)
			FROM jsonb_array_elements(tag_ids) elem
			WHERE elem <> to_jsonb($1::bigint)
		 ), updated_at = $2
		 WHERE owner_id = $3 AND tag_ids @> to_jsonb($1::bigint)`,
		tagID, timeutil.NowMillis(), ownerID)
	return err
}
