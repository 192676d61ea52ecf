package models

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice amounts are stored in minor units (cents).
type Invoice struct {
	ID         string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerID string        `gorm:"type:varchar(36);not null;index" json:"customer_id"`
	Customer   *Customer     `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
	Amount     int64         `gorm:"not null;check:amount > 0" json:"amount"`
	Status     InvoiceStatus `gorm:"type:varchar(16);not null;index;check:status IN ('pending','paid')" json:"status"`
	Date       string        `gorm:"type:varchar(10);not null" json:"date"`
}

// InvoiceRow is one line of the dashboard listing.
type InvoiceRow struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"name"`
	Email        string        `json:"email"`
	Amount       int64         `json:"amount"`
	Status       InvoiceStatus `json:"status"`
	Date         string        `json:"date"`
}
