// services/invoice_number.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoice-backend/models"
	"invoice-backend/utils"
)

// InvoiceNumberService allocates sequential invoice numbers of the form
// CompanyName/DDMMYYYY/NNN/{bw|aw}. Each (company, date, warranty status)
// triple numbers its own stream starting at 001.
type InvoiceNumberService struct {
	db *gorm.DB
}

func NewInvoiceNumberService(db *gorm.DB) *InvoiceNumberService {
	return &InvoiceNumberService{db: db}
}

// Next allocates the next invoice number for the company and warranty
// status, dated with the server's local clock. Storage failures propagate
// to the caller; there are no retries.
func (s *InvoiceNumberService) Next(companyName, warrantyStatus string) (string, error) {
	today := utils.FormatDateDDMMYYYY(time.Now())

	counter, err := s.nextCounter(companyName, today, warrantyStatus)
	if err != nil {
		return "", fmt.Errorf("allocate invoice counter: %w", err)
	}

	return fmt.Sprintf("%s/%s/%03d/%s", companyName, today, counter, WarrantySuffix(warrantyStatus)), nil
}

// nextCounter performs the find-or-create-then-increment as ONE statement.
// The upsert with RETURNING is the sole concurrency-control point in the
// system: a read-then-write pair here would let two concurrent requests
// allocate the same counter.
func (s *InvoiceNumberService) nextCounter(companyName, date, warrantyStatus string) (int, error) {
	var counter int
	err := s.db.Raw(`
		INSERT INTO invoice_counters (id, company_name, date, warranty_status, counter, last_updated)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT (company_name, date, warranty_status)
		DO UPDATE SET counter = invoice_counters.counter + 1, last_updated = excluded.last_updated
		RETURNING counter`,
		uuid.New(), companyName, date, warrantyStatus, time.Now(),
	).Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter, nil
}

// WarrantySuffix maps a warranty status to its invoice-number suffix.
// Anything other than "Before" gets "aw".
func WarrantySuffix(warrantyStatus string) string {
	if warrantyStatus == models.WarrantyBefore {
		return "bw"
	}
	return "aw"
}
