// services/daily_summary.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"invoice-backend/models"
	"invoice-backend/utils"
)

// DailySummaryService logs how many invoices each company created the
// previous day. Purely informational; it never mutates anything.
type DailySummaryService struct {
	db *gorm.DB
}

func NewDailySummaryService(db *gorm.DB) *DailySummaryService {
	return &DailySummaryService{db: db}
}

func (s *DailySummaryService) StartScheduler() {
	c := cron.New()

	// Run daily at midnight
	c.AddFunc("0 0 * * *", s.LogYesterdaySummary)

	c.Start()
	log.Println("Daily summary scheduler started")
}

func (s *DailySummaryService) LogYesterdaySummary() {
	end := utils.BeginningOfDay(time.Now())
	start := end.AddDate(0, 0, -1)

	rows, err := s.Summarize(start, end)
	if err != nil {
		log.Printf("Failed to summarize invoices: %v", err)
		return
	}

	if len(rows) == 0 {
		log.Println("Daily summary: no invoices created yesterday")
		return
	}
	for _, r := range rows {
		log.Printf("Daily summary: %s created %d invoice(s) yesterday", r.CompanyName, r.Count)
	}
}

// CompanyInvoiceCount is one row of the per-company invoice summary.
type CompanyInvoiceCount struct {
	CompanyName string
	Count       int64
}

// Summarize counts invoices created in [start, end) grouped by company.
func (s *DailySummaryService) Summarize(start, end time.Time) ([]CompanyInvoiceCount, error) {
	var rows []CompanyInvoiceCount
	err := s.db.Model(&models.Invoice{}).
		Select("company_name, COUNT(*) as count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("company_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
