package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

type TagRepository struct {
	DB *pgxpool.Pool
}

func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{DB: db}
}

// Create inserts a new tag
func (r *TagRepository) Create(ctx context.Context, t *models.Tag) error {
	now := timeutil.NowMillis()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.DB.QueryRow(ctx,
		`INSERT INTO tags(owner_id, name, color, scope, created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		t.OwnerID, t.Name, t.Color, t.Scope, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

// Get retrieves a non-deleted tag within the owner scope.
func (r *TagRepository) Get(ctx context.Context, ownerID, id int64) (*models.Tag, error) {
	var t models.Tag
	err := r.DB.QueryRow(ctx,
		`SELECT id, owner_id, name, color, scope, deleted_at, created_at, updated_at
		 FROM tags WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`,
		id, ownerID,
	).Scan(&t.ID, &t.OwnerID, &t.Name, &t.Color, &t.Scope,
		&t.DeletedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all non-deleted tags of the owner.
func (r *TagRepository) List(ctx context.Context, ownerID int64) ([]*models.Tag, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, owner_id, name, color, scope, deleted_at, created_at, updated_at
		 FROM tags WHERE owner_id = $1 AND deleted_at IS NULL
		 ORDER BY name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var t models.Tag
		err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Color, &t.Scope,
			&t.DeletedAt, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// Update rewrites the tag row.
func (r *TagRepository) Update(ctx context.Context, t *models.Tag) error {
	t.UpdatedAt = timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE tags SET name=$1, color=$2, scope=$3, updated_at=$4
		 WHERE id=$5 AND owner_id=$6 AND deleted_at IS NULL`,
		t.Name, t.Color, t.Scope, t.UpdatedAt, t.ID, t.OwnerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete tombstones a tag. Reference stripping from invoices and
// folders is the service's job so it happens in the same flow.
func (r *TagRepository) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := timeutil.NowMillis()
	tag, err := r.DB.Exec(ctx,
		`UPDATE tags SET deleted_at=$1, updated_at=$1
		 WHERE id=$2 AND owner_id=$3 AND deleted_at IS NULL`, now, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
