package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoice-backend/models"
)

// Connect opens the Postgres database. The handle is passed explicitly to
// controllers and services rather than held as a package global so tests
// can swap in their own database.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all record kinds, including the
// composite unique index on invoice counters.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.ChatSession{},
		&models.InvoiceCounter{},
		&models.Invoice{},
	)
}
