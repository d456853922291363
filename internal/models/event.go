package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is a community event created and owned by a single user,
// identified by the creator's verified email.
type Event struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	EventType    string         `gorm:"not null;size:100;index" json:"eventType"`
	Thumbnail    string         `gorm:"size:2048" json:"thumbnail"`
	Images       datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`
	Location     string         `gorm:"size:500" json:"location"`
	EventDate    time.Time      `gorm:"not null;index" json:"eventDate"`
	CreatorEmail string         `gorm:"not null;size:255;index" json:"creatorEmail"`
	CreatedAt    time.Time      `json:"createdAt"`
}
