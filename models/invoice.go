package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Warranty status values accepted on invoices; encoded as the bw/aw suffix
// of generated invoice numbers.
const (
	WarrantyBefore = "Before"
	WarrantyAfter  = "After"
)

// Product is one line item on an invoice.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Products is stored as a single JSON column, keeping line items embedded
// in the invoice row.
type Products []Product

func (p Products) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Products) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for Products column")
	}
}

// InvoiceCounter is one sequential-numbering stream, keyed by company,
// DDMMYYYY date and warranty status. The composite unique index is what
// makes the allocation upsert collision-free; rows are never deleted.
type InvoiceCounter struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName    string    `gorm:"uniqueIndex:idx_counter_key;not null" json:"companyName"`
	Date           string    `gorm:"uniqueIndex:idx_counter_key;not null" json:"date"` // DDMMYYYY
	WarrantyStatus string    `gorm:"uniqueIndex:idx_counter_key;not null" json:"warrantyStatus"`
	Counter        int       `gorm:"default:0" json:"counter"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// Invoice is a stored invoice. Subtotal, tax and total are caller-computed
// and persisted verbatim; the backend never recomputes them from Products.
type Invoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber   string    `gorm:"uniqueIndex;not null" json:"invoiceNumber"`
	QueryID         string    `gorm:"not null" json:"queryId"`
	CustomerName    string    `gorm:"not null" json:"customerName"`
	CustomerAddress string    `gorm:"not null" json:"customerAddress"`
	CompanyName     string    `gorm:"not null" json:"companyName"`
	Products        Products  `gorm:"type:jsonb" json:"products"`
	WarrantyStatus  string    `gorm:"type:varchar(10);not null" json:"warrantyStatus"`
	Subtotal        float64   `json:"subtotal"`
	TaxAmount       float64   `json:"taxAmount"`
	Total           float64   `json:"total"`
	GeneratedDate   time.Time `json:"generatedDate"`

	CreatedAt time.Time `json:"createdAt"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	i.ID = uuid.New()
	return
}
