package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := timeutil.NowMillis()
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, is_active, created_at, updated_at)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_active, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_active, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
