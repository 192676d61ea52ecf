package repository

import (
	"context"
	"errors"
	"testing"

	"invoice-admin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInvoiceRepositoryInsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	seedCustomer(t, db, "c1", "evil")
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := &models.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 1050, Status: models.InvoiceStatusPending, Date: "2026-10-14"}
	require.NoError(t, repo.Insert(ctx, inv))

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, *inv, *got)
}

func TestInvoiceRepositoryInsertRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	seedCustomer(t, db, "c1", "evil")
	repo := NewInvoiceRepository(db)

	err := repo.Insert(context.Background(), &models.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 0, Status: models.InvoiceStatusPaid, Date: "2026-10-14"})
	assert.ErrorContains(t, err, "insert invoice")
}

func TestInvoiceRepositoryUpdateKeepsDate(t *testing.T) {
	db := setupTestDB(t)
	seedCustomer(t, db, "c1", "evil")
	seedCustomer(t, db, "c2", "delba")
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 1050, Status: models.InvoiceStatusPending, Date: "2025-01-02"}))

	n, err := repo.Update(ctx, "inv-1", "c2", 500, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.CustomerID)
	assert.EqualValues(t, 500, got.Amount)
	assert.Equal(t, models.InvoiceStatusPaid, got.Status)
	assert.Equal(t, "2025-01-02", got.Date)
}

func TestInvoiceRepositoryMissingRowsAreNoOps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	n, err := repo.Update(ctx, "missing", "c1", 100, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvoiceRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	seedCustomer(t, db, "c1", "evil")
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 100, Status: models.InvoiceStatusPaid, Date: "2025-01-02"}))
	n, err := repo.Delete(ctx, "inv-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetByID(ctx, "inv-1")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInvoiceRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	seedCustomer(t, db, "c1", "evil")
	seedCustomer(t, db, "c2", "delba")
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.Invoice{ID: "a", CustomerID: "c1", Amount: 100, Status: models.InvoiceStatusPaid, Date: "2025-01-02"}))
	require.NoError(t, repo.Insert(ctx, &models.Invoice{ID: "b", CustomerID: "c2", Amount: 200, Status: models.InvoiceStatusPending, Date: "2025-03-04"}))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].ID)
	assert.Equal(t, "delba", rows[0].CustomerName)
	assert.Equal(t, "delba@example.com", rows[0].Email)
	assert.Equal(t, "a", rows[1].ID)
	assert.EqualValues(t, 100, rows[1].Amount)
}
