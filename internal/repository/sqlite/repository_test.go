package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/Nazarious-ucu/newsletter-manager/internal/repository/sqlite"
	"github.com/Nazarious-ucu/newsletter-manager/internal/repository/sqlite/sqlitetest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUser(t *testing.T, repo *sqlite.UserRepository, email string) models.User {
	t.Helper()
	u := models.User{
		ID:           uuid.New(),
		Name:         "Jane",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), &u))
	return u
}

func TestLeadRepository_DuplicateEmail(t *testing.T) {
	db := sqlitetest.New(t)
	repo := sqlite.NewLeadRepository(db, zap.NewNop())
	ctx := context.Background()

	first := models.Lead{ID: uuid.New(), Email: "lead@example.com", Source: "web", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, &first))

	second := models.Lead{ID: uuid.New(), Email: "lead@example.com", Source: "ads", CreatedAt: time.Now().UTC()}
	err := repo.Create(ctx, &second)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := sqlitetest.New(t)
	repo := sqlite.NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	created := newUser(t, repo, "jane@example.com")

	got, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	dup := models.User{ID: uuid.New(), Name: "Other", Email: "jane@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, &dup), models.ErrDuplicate)
}

func TestNewsletterRepository_CreateUpdateList(t *testing.T) {
	db := sqlitetest.New(t)
	users := sqlite.NewUserRepository(db, zap.NewNop())
	repo := sqlite.NewNewsletterRepository(db, zap.NewNop())
	ctx := context.Background()

	owner := newUser(t, users, "owner@example.com")
	now := time.Now().UTC().Add(-time.Hour)
	n := models.Newsletter{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      "Morning brief",
		Frequency: models.FrequencyDaily,
		OwnerID:   owner.ID,
	}
	require.NoError(t, repo.Create(ctx, &n))

	n.Name = "Evening brief"
	n.Frequency = models.FrequencyMonthly
	require.NoError(t, repo.Update(ctx, &n))

	got, err := repo.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening brief", got.Name)
	assert.Equal(t, models.FrequencyMonthly, got.Frequency)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updated_at must be refreshed on write")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	missing := models.Newsletter{ID: uuid.New(), Name: "Ghost", Frequency: models.FrequencyWeekly, OwnerID: owner.ID}
	assert.ErrorIs(t, repo.Update(ctx, &missing), models.ErrNotFound)
}

func TestNewsletterRepository_UnknownOwner(t *testing.T) {
	db := sqlitetest.New(t)
	repo := sqlite.NewNewsletterRepository(db, zap.NewNop())

	n := models.Newsletter{
		ID:        uuid.New(),
		Name:      "Orphan",
		Frequency: models.FrequencyWeekly,
		OwnerID:   uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := repo.Create(context.Background(), &n)
	assert.ErrorIs(t, err, models.ErrInvalidReference)
}

func TestInvoiceRepository_Lifecycle(t *testing.T) {
	db := sqlitetest.New(t)
	repo := sqlite.NewInvoiceRepository(db, zap.NewNop())
	ctx := context.Background()

	inv := models.Invoice{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Amount:     1250,
		Status:     models.InvoicePending,
		Date:       "2026-10-19",
	}
	require.NoError(t, repo.Create(ctx, &inv))

	inv.Status = models.InvoicePaid
	inv.Amount = 990
	require.NoError(t, repo.Update(ctx, &inv))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(990), got.Amount)
	assert.Equal(t, models.InvoicePaid, got.Status)
	assert.Equal(t, "2026-10-19", got.Date)

	require.NoError(t, repo.Delete(ctx, inv.ID))
	require.NoError(t, repo.Delete(ctx, uuid.New()), "deleting a missing invoice is not an error")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStatsRepository_Counts(t *testing.T) {
	db := sqlitetest.New(t)
	users := sqlite.NewUserRepository(db, zap.NewNop())
	newUser(t, users, "a@example.com")
	newUser(t, users, "b@example.com")

	counts, err := sqlite.NewStatsRepository(db).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["users"])
	assert.Equal(t, int64(0), counts["leads"])
}

func TestInvoiceRepository_DriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("disk I/O error")
	mock.ExpectExec("DELETE FROM invoices").WillReturnError(driverErr)

	repo := sqlite.NewInvoiceRepository(db, zap.NewNop())
	err = repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsletterRepository_ListQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM newsletters").WillReturnError(errors.New("no such table"))

	repo := sqlite.NewNewsletterRepository(db, zap.NewNop())
	list, err := repo.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
