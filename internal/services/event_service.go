package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventService struct {
	db              *gorm.DB
	defaultPageSize int
}

func NewEventService(db *gorm.DB, defaultPageSize int) *EventService {
	if defaultPageSize <= 0 {
		defaultPageSize = 9
	}
	return &EventService{db: db, defaultPageSize: defaultPageSize}
}

// ListEventsQuery carries the optional listing filters. Zero values mean
// "not supplied".
type ListEventsQuery struct {
	EventType string
	Search    string
	Location  string
	DateRange string
	Sort      string
	Page      int
	Limit     int
}

// List returns upcoming events refined by the query filters, one page at a
// time. Past events are excluded unconditionally.
func (s *EventService) List(q ListEventsQuery) (*dto.EventListResponse, error) {
	now := time.Now()

	tx := s.db.Model(&models.Event{}).Where("event_date >= ?", now)
	if q.EventType != "" {
		tx = tx.Where("event_type = ?", q.EventType)
	}
	if q.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if q.Location != "" {
		tx = tx.Where("location ILIKE ?", "%"+q.Location+"%")
	}
	if end, ok := dateRangeEnd(now, q.DateRange); ok {
		tx = tx.Where("event_date <= ?", end)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultPageSize
	}

	events := make([]models.Event, 0, limit)
	err := tx.Order(sortClause(q.Sort)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Events:     events,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

// dateRangeEnd maps a relative range keyword to an upper bound on event_date.
// AddDate gives the same first-of-month rollover the original clients expect
// (Jan 31 + 1 month lands in early March). Unrecognized values are ignored.
func dateRangeEnd(now time.Time, dateRange string) (time.Time, bool) {
	switch dateRange {
	case "thisWeek":
		return now.AddDate(0, 0, 7), true
	case "thisMonth":
		return now.AddDate(0, 1, 0), true
	case "nextMonth":
		return now.AddDate(0, 2, 0), true
	}
	return time.Time{}, false
}

func sortClause(sort string) string {
	switch sort {
	case "newest":
		return "created_at DESC"
	case "title":
		return "title ASC"
	default:
		return "event_date ASC"
	}
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// Count returns the total number of events in the store.
func (s *EventService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Create validates and inserts a new event. creatorEmail always comes from
// the verified principal, never from the request body.
func (s *EventService) Create(creatorEmail string, req *dto.CreateEventRequest) (*models.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.EventType) == "" {
		return nil, fmt.Errorf("%w: eventType is required", ErrValidation)
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if req.EventDate == "" {
		return nil, fmt.Errorf("%w: eventDate is required", ErrValidation)
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: eventDate must be RFC3339 or YYYY-MM-DD", ErrValidation)
	}
	if !eventDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: eventDate must be in the future", ErrValidation)
	}

	images := filterImages(req.Images)
	if strings.TrimSpace(req.Thumbnail) == "" && len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required (thumbnail or images)", ErrValidation)
	}

	event := models.Event{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		EventType:    req.EventType,
		Thumbnail:    req.Thumbnail,
		Location:     req.Location,
		EventDate:    eventDate,
		CreatorEmail: creatorEmail,
		CreatedAt:    time.Now(),
	}
	if len(images) > 0 {
		event.Images = mustJSON(images)
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Update applies partial changes to an event the caller owns. A zero-row
// match means unknown id or foreign owner; both surface as ErrNotOwner.
func (s *EventService) Update(id uuid.UUID, callerEmail string, req *dto.UpdateEventRequest) (*models.Event, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return nil, fmt.Errorf("%w: eventDate must be RFC3339 or YYYY-MM-DD", ErrValidation)
		}
		if !eventDate.After(time.Now()) {
			return nil, fmt.Errorf("%w: eventDate must be in the future", ErrValidation)
		}
		updates["event_date"] = eventDate
	}
	if req.Images != nil {
		images := filterImages(*req.Images)
		if len(images) == 0 {
			return nil, fmt.Errorf("%w: images must contain at least one non-empty URL", ErrValidation)
		}
		updates["images"] = mustJSON(images)
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Event{}).
			Where("id = ? AND creator_email = ?", id, callerEmail).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotOwner
		}
	}

	var event models.Event
	if err := s.db.First(&event, "id = ? AND creator_email = ?", id, callerEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwner
		}
		return nil, err
	}
	return &event, nil
}

// Delete removes an owned event and cascades to its joins in one transaction.
func (s *EventService) Delete(id uuid.UUID, callerEmail string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND creator_email = ?", id, callerEmail).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotOwner
		}
		return tx.Where("event_id = ?", id).Delete(&models.Join{}).Error
	})
}

// ListByCreator returns the caller's own events, soonest first.
func (s *EventService) ListByCreator(email string) ([]models.Event, error) {
	events := make([]models.Event, 0)
	err := s.db.Where("creator_email = ?", email).Order("event_date ASC").Find(&events).Error
	return events, err
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// filterImages drops empty and whitespace-only entries.
func filterImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) != "" {
			out = append(out, img)
		}
	}
	return out
}

func mustJSON(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
