package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the single current profile for a user. Goals and fears are
// ordered lists stored as JSONB so elements may contain any characters,
// including commas.
type Profile struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Name      string         `json:"name"`
	Goals     datatypes.JSON `json:"goals" gorm:"type:jsonb;default:'[]'"`
	Fears     datatypes.JSON `json:"fears" gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
