package sqlite

import (
	"context"
	"database/sql"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns the number of rows per record kind in a single statement.
func (r *StatsRepository) Counts(ctx context.Context) (map[string]int64, error) {
	var leads, users, newsletters, invoices int64
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM newsletters),
			(SELECT COUNT(*) FROM invoices)`,
	).Scan(&leads, &users, &newsletters, &invoices)
	if err != nil {
		return nil, err
	}

	return map[string]int64{
		"leads":       leads,
		"users":       users,
		"newsletters": newsletters,
		"invoices":    invoices,
	}, nil
}
