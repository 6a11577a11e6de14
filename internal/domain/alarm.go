package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Alarm is a stored alarm record. The server only persists alarms; the
// mobile client schedules the actual notifications.
type Alarm struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Time      string         `json:"time" gorm:"not null"` // "HH:MM", stored as given
	Label     string         `json:"label"`
	Days      datatypes.JSON `json:"days" gorm:"type:jsonb;default:'[]'"` // ["mon", "tue"]
	IsActive  bool           `json:"isActive"`
	Sound     string         `json:"sound"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
