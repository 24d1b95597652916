package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is a registered app user. Mobile is the lookup key for login and
// profile retrieval but is not unique at the storage layer; lookups assume
// at most one match, so behavior under duplicate mobiles is undefined (see
// DESIGN.md).
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `json:"fullName"`
	DOB      string    `json:"dob"`
	Gender   string    `json:"gender"`
	Address  string    `json:"address"`
	Mobile   string    `gorm:"index" json:"mobile"`
	Password string    `json:"password"` // stored as given, plain text

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}
