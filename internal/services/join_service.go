package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/models"
	"gorm.io/gorm"
)

type JoinService struct {
	db *gorm.DB
}

func NewJoinService(db *gorm.DB) *JoinService {
	return &JoinService{db: db}
}

// Join records the caller's attendance. The existence check before insert is
// not atomic; a concurrent duplicate join can slip through, which is accepted.
func (s *JoinService) Join(eventID uuid.UUID, userEmail string) (*models.Join, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var existing models.Join
	err := s.db.Where("event_id = ? AND user_email = ?", eventID, userEmail).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	join := models.Join{
		EventID:   eventID,
		UserEmail: userEmail,
		JoinedAt:  time.Now(),
	}
	if err := s.db.Create(&join).Error; err != nil {
		return nil, err
	}
	return &join, nil
}

// ListJoined returns the caller's joined events merged with the join
// timestamp, soonest event first.
func (s *JoinService) ListJoined(userEmail string) ([]dto.JoinedEvent, error) {
	joined := make([]dto.JoinedEvent, 0)
	err := s.db.Table("joins").
		Select("events.id, events.title, events.description, events.event_type, events.thumbnail, events.location, events.event_date, events.creator_email, joins.joined_at").
		Joins("JOIN events ON events.id = joins.event_id").
		Where("joins.user_email = ?", userEmail).
		Order("events.event_date ASC").
		Scan(&joined).Error
	return joined, err
}
