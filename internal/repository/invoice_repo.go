package repository

import (
	"context"
	"fmt"

	"invoice-admin-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert adds a single invoice row.
func (r *InvoiceRepository) Insert(ctx context.Context, inv *models.Invoice) error {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of the invoice with the given id.
// The date is left untouched. Matching zero rows is not an error.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID string, amount int64, status models.InvoiceStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update invoice %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the invoice with the given id. Matching zero rows is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete invoice %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// List returns every invoice with its customer, newest first.
func (r *InvoiceRepository) List(ctx context.Context) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.customer_id, customers.name AS customer_name, customers.email, invoices.amount, invoices.status, invoices.date").
		Joins("LEFT JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC, invoices.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

// GetByID loads the invoice shown on the edit form. An unknown id returns an
// error wrapping gorm.ErrRecordNotFound.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", id, err)
	}
	return &inv, nil
}
