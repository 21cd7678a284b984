// Package sqlitetest opens a migrated throwaway database for tests.
package sqlitetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/repository/sqlite"
	"github.com/Nazarious-ucu/newsletter-manager/migrations"
	"github.com/stretchr/testify/require"
)

func New(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db, migrations.FS))

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
