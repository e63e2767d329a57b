package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-backend/internal/models"
)

type StatusLogRepository struct {
	DB *pgxpool.Pool
}

func NewStatusLogRepository(db *pgxpool.Pool) *StatusLogRepository {
	return &StatusLogRepository{DB: db}
}

// Insert appends one audit record. Status logs are append-only; there is
// no update or delete path.
func (r *StatusLogRepository) Insert(ctx context.Context, l *models.StatusLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO status_logs(owner_id, invoice_id, previous_status,
			new_status, changed_at, notes)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		l.OwnerID, l.InvoiceID, l.PreviousStatus, l.NewStatus, l.ChangedAt, l.Notes,
	).Scan(&l.ID)
}

// List returns the owner's status transitions, newest first, optionally
// narrowed to one invoice.
func (r *StatusLogRepository) List(ctx context.Context, ownerID int64, invoiceID int64) ([]*models.StatusLog, error) {
	query := `SELECT id, owner_id, invoice_id, previous_status, new_status,
		changed_at, notes
	 FROM status_logs WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if invoiceID != 0 {
		args = append(args, invoiceID)
		query += fmt.Sprintf(" AND invoice_id = $%d", len(args))
	}
	query += " ORDER BY changed_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.StatusLog
	for rows.Next() {
		var l models.StatusLog
		err := rows.Scan(&l.ID, &l.OwnerID, &l.InvoiceID, &l.PreviousStatus,
			&l.NewStatus, &l.ChangedAt, &l.Notes)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
