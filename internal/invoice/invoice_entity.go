package invoice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGSTPercent applies to every invoice; the rate is not
// configurable per invoice.
const DefaultGSTPercent = 18.0

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNo  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoice_no"`
	ClientName string    `gorm:"type:varchar(150);not null"`
	Email      string    `gorm:"type:varchar(150)"`

	Subtotal   float64 `gorm:"type:numeric(12,2);not null"`
	GSTPercent float64 `gorm:"type:numeric(5,2);not null;default:18"`
	GSTAmount  float64 `gorm:"type:numeric(12,2);not null"`
	GrandTotal float64 `gorm:"type:numeric(12,2);not null"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName  string    `gorm:"type:varchar(150);not null"`
	Quantity  int       `gorm:"not null"`
	Rate      float64   `gorm:"type:numeric(12,2);not null"`

	// Amount is Quantity*Rate frozen at creation time.
	Amount float64 `gorm:"type:numeric(12,2);not null"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}
