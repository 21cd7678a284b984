package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const newsletterColumns = `id, created_at, updated_at, name, frequency, owner_id`

type NewsletterRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewNewsletterRepository(db *sql.DB, logger *zap.Logger) *NewsletterRepository {
	return &NewsletterRepository{db: db, log: logger.With(zap.String("component", "NewsletterRepository"))}
}

func (r *NewsletterRepository) Create(ctx context.Context, n *models.Newsletter) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO newsletters (`+newsletterColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.CreatedAt, n.UpdatedAt, n.Name, string(n.Frequency), n.OwnerID,
	)
	if err != nil {
		r.log.Error("failed to insert newsletter", zap.String("name", n.Name), zap.Error(err))
		return translate(err)
	}
	return nil
}

// Update overwrites name, frequency and owner and stamps updated_at. It
// returns models.ErrNotFound when no row has the given id.
func (r *NewsletterRepository) Update(ctx context.Context, n *models.Newsletter) error {
	n.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE newsletters SET name = ?, frequency = ?, owner_id = ?, updated_at = ? WHERE id = ?`,
		n.Name, string(n.Frequency), n.OwnerID, n.UpdatedAt, n.ID,
	)
	if err != nil {
		r.log.Error("failed to update newsletter", zap.String("id", n.ID.String()), zap.Error(err))
		return translate(err)
	}
	return expectOneRow(res)
}

func (r *NewsletterRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Newsletter, error) {
	var n models.Newsletter
	var freq string
	err := r.db.QueryRowContext(ctx,
		`SELECT `+newsletterColumns+` FROM newsletters WHERE id = ?`, id,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Name, &freq, &n.OwnerID)
	if err != nil {
		return models.Newsletter{}, translate(err)
	}
	n.Frequency = models.Frequency(freq)
	return n, nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]models.Newsletter, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+newsletterColumns+` FROM newsletters ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Warn("failed to close rows", zap.Error(err))
		}
	}(rows)

	newsletters := make([]models.Newsletter, 0)
	for rows.Next() {
		var n models.Newsletter
		var freq string
		if err := rows.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Name, &freq, &n.OwnerID); err != nil {
			return nil, err
		}
		n.Frequency = models.Frequency(freq)
		newsletters = append(newsletters, n)
	}

	return newsletters, rows.Err()
}
