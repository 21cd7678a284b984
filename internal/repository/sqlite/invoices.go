package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewInvoiceRepository(db *sql.DB, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, log: logger.With(zap.String("component", "InvoiceRepository"))}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)`,
		inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date,
	)
	if err != nil {
		r.log.Error("failed to insert invoice", zap.Error(err))
		return translate(err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?`,
		inv.CustomerID, inv.Amount, string(inv.Status), inv.ID,
	)
	if err != nil {
		r.log.Error("failed to update invoice", zap.String("id", inv.ID.String()), zap.Error(err))
		return translate(err)
	}
	return expectOneRow(res)
}

// Delete removes the invoice if it exists. Deleting a missing id is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		r.log.Error("failed to delete invoice", zap.String("id", id.String()), zap.Error(err))
		return translate(err)
	}
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, amount, status, date FROM invoices ORDER BY date DESC, id`)
	if err != nil {
		return nil, translate(err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Warn("failed to close rows", zap.Error(err))
		}
	}(rows)

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		var inv models.Invoice
		var status string
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date); err != nil {
			return nil, err
		}
		inv.Status = models.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Invoice, error) {
	var inv models.Invoice
	var status string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Error("failed to query invoice", zap.String("id", id.String()), zap.Error(err))
		}
		return models.Invoice{}, translate(err)
	}
	inv.Status = models.InvoiceStatus(status)
	return inv, nil
}
