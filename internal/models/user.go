package models

import "time"

// Valid values for User.Role.
const (
	RoleUser      = "user"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// User is keyed by email; identity itself lives at the provider, this row
// only mirrors profile data plus platform role and block state.
type User struct {
	Email       string    `gorm:"primaryKey;size:255" json:"email"`
	DisplayName string    `gorm:"size:255" json:"displayName"`
	PhotoURL    string    `gorm:"size:2048" json:"photoURL"`
	FirebaseUID string    `gorm:"size:128;index" json:"firebaseUID"`
	Role        string    `gorm:"size:20;not null;default:'user'" json:"role"`
	IsBlocked   bool      `gorm:"not null;default:false" json:"isBlocked"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLogin   time.Time `json:"lastLogin"`
}

// ValidRole reports whether r is one of the three platform roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleOrganizer || r == RoleAdmin
}
