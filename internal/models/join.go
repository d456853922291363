package models

import (
	"time"

	"github.com/google/uuid"
)

// Join links a user (by email) to an event they attend. Uniqueness of
// (event_id, user_email) is enforced by an existence check before insert,
// not by a storage constraint.
type Join struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`
	UserEmail string    `gorm:"not null;size:255;index" json:"userEmail"`
	JoinedAt  time.Time `json:"joinedAt"`
}
