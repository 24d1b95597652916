package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a single chat message, either from the user or the assistant.
type Message struct {
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// Messages is stored as a single JSON column so a session and its messages
// stay one row.
type Messages []Message

func (m Messages) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Messages) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for Messages column")
	}
}

// ChatSession holds one saved chat turn: exactly one user message followed
// by one assistant reply. History retrieval flattens sessions in creation
// order; it never appends to an existing session.
type ChatSession struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Mobile   string    `gorm:"index" json:"mobile"`
	Messages Messages  `gorm:"type:jsonb" json:"messages"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
