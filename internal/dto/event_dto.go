package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/socialevents/social-events-backend/internal/models"
)

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	EventType   string   `json:"eventType"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	EventDate   string   `json:"eventDate"`
}

// UpdateEventRequest uses pointer fields so handlers can tell "absent"
// from "set to zero value"; only supplied fields are written.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	EventType   *string   `json:"eventType"`
	Thumbnail   *string   `json:"thumbnail"`
	Images      *[]string `json:"images"`
	Location    *string   `json:"location"`
	EventDate   *string   `json:"eventDate"`
}

type EventListResponse struct {
	Events     []models.Event `json:"events"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

type EventCountResponse struct {
	Count int64 `json:"count"`
}

type JoinResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

// JoinedEvent is an event merged with the caller's join timestamp, produced
// by the joins-events SQL join.
type JoinedEvent struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventType    string    `json:"eventType"`
	Thumbnail    string    `json:"thumbnail"`
	Location     string    `json:"location"`
	EventDate    time.Time `json:"eventDate"`
	CreatorEmail string    `json:"creatorEmail"`
	JoinedAt     time.Time `json:"joinedAt"`
}
