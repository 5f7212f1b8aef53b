package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ChannelPreferences maps a report category to whether the account
// wants proximity notifications for it.
type ChannelPreferences map[string]bool

func (p ChannelPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ChannelPreferences) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, p)
}

// Enabled reports whether notifications for a category are turned on.
// Categories without an explicit preference default to enabled.
func (p ChannelPreferences) Enabled(category string) bool {
	if p == nil {
		return true
	}
	enabled, ok := p[category]
	if !ok {
		return true
	}
	return enabled
}

type HomeLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

func (h HomeLocation) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *HomeLocation) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, h)
}

type Account struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email          string         `json:"email" gorm:"unique_index"`
	PasswordDigest string         `json:"-"`
	Name           string         `json:"name"`
	Role           string         `json:"role" gorm:"default:'USER'"`
	Profile        AccountProfile `json:"profile" gorm:"foreignkey:AccountID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type AccountProfile struct {
	ID              uuid.UUID          `json:"-" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID       uuid.UUID          `json:"-" gorm:"type:uuid"`
	HomeLocation    *HomeLocation      `json:"home_location" sql:"type:jsonb"`
	Channels        ChannelPreferences `json:"channels" sql:"type:jsonb"`
	MessengerChatID string             `json:"messenger_chat_id"`
	Language        string             `json:"language" gorm:"default:'en'"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
