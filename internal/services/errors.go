package services

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/repositories"
)

// mapRepoError translates persistence errors into the service taxonomy.
// Missing rows (including rows owned by someone else, which the owner-scoped
// queries simply never return) become not-found; unique violations become
// validation rejections.
func mapRepoError(err error, uniqueMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	if uniqueMsg != "" && repositories.IsUniqueViolation(err) {
		return apperr.Validation("%s", uniqueMsg)
	}
	return err
}
