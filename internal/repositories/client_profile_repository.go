package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

type ClientProfileRepository struct {
	DB *pgxpool.Pool
}

func NewClientProfileRepository(db *pgxpool.Pool) *ClientProfileRepository {
	return &ClientProfileRepository{DB: db}
}

const clientProfileColumns = `id, owner_id, name, job_title, email, phone,
	address, tax_id, default_currency, default_payment_terms, deleted_at,
	created_at, updated_at`

func scanClientProfile(row pgx.Row) (*models.ClientProfile, error) {
	var p models.ClientProfile
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.JobTitle, &p.Email,
		&p.Phone, &p.Address, &p.TaxID, &p.DefaultCurrency,
		&p.DefaultPaymentTerms, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new client profile
func (r *ClientProfileRepository) Create(ctx context.Context, p *models.ClientProfile) error {
	now := timeutil.NowMillis()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.DB.QueryRow(ctx,
		`INSERT INTO client_profiles(owner_id, name, job_title, email, phone,
			address, tax_id, default_currency, default_payment_terms,
			created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING id`,
		p.OwnerID, p.Name, p.JobTitle, p.Email, p.Phone, p.Address, p.TaxID,
		p.DefaultCurrency, p.DefaultPaymentTerms, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

// Get retrieves a non-deleted client profile within the owner scope.
func (r *ClientProfileRepository) Get(ctx context.Context, ownerID, id int64) (*models.ClientProfile, error) {
	return scanClientProfile(r.DB.QueryRow(ctx,
		`SELECT `+clientProfileColumns+` FROM client_profiles
		 WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`, id, ownerID))
}

// List returns all non-deleted client profiles of the owner.
func (r *ClientProfileRepository) List(ctx context.Context, ownerID int64) ([]*models.ClientProfile, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+clientProfileColumns+` FROM client_profiles
		 WHERE owner_id = $1 AND deleted_at IS NULL
		 ORDER BY name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.ClientProfile
	for rows.Next() {
		p, err := scanClientProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Update rewrites the profile row.
func (r *ClientProfileRepository) Update(ctx context.Context, p *models.ClientProfile) error {
	p.UpdatedAt = timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE client_profiles SET name=$1, job_title=$2, email=$3, phone=$4,
			address=$5, tax_id=$6, default_currency=$7,
			default_payment_terms=$8, updated_at=$9
		 WHERE id=$10 AND owner_id=$11 AND deleted_at IS NULL`,
		p.Name, p.JobTitle, p.Email, p.Phone, p.Address, p.TaxID,
		p.DefaultCurrency, p.DefaultPaymentTerms, p.UpdatedAt, p.ID, p.OwnerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete tombstones a client profile.
func (r *ClientProfileRepository) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE client_profiles SET deleted_at=$1, updated_at=$1
		 WHERE id=$2 AND owner_id=$3 AND deleted_at IS NULL`, now, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
