package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"go.uber.org/zap"
)

type LeadRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewLeadRepository(db *sql.DB, logger *zap.Logger) *LeadRepository {
	return &LeadRepository{db: db, log: logger.With(zap.String("component", "LeadRepository"))}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	start := time.Now()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, email, source, created_at) VALUES (?, ?, ?, ?)`,
		lead.ID, lead.Email, lead.Source, lead.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert lead",
			zap.String("email", lead.Email), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return translate(err)
	}

	r.log.Debug("lead created", zap.String("id", lead.ID.String()), zap.Duration("duration", time.Since(start)))
	return nil
}
