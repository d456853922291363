package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/socialevents/social-events-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SampleEvents is the demo catalog inserted by the seed utility.
var SampleEvents = []models.Event{
	{
		Title:        "Community Garden Workshop",
		Description:  "Learn sustainable gardening practices and community building. Join us for hands-on experience in urban farming.",
		EventType:    "Community",
		Thumbnail:    "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400",
		Location:     "Downtown Community Center, New York",
		EventDate:    time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
		CreatorEmail: "organizer@community.org",
	},
	{
		Title:        "STEM Education Conference",
		Description:  "Annual conference featuring the latest in science, technology, engineering, and mathematics education.",
		EventType:    "Education",
		Thumbnail:    "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400",
		Location:     "Tech University Campus, Boston",
		EventDate:    time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC),
		CreatorEmail: "edu@stemconf.com",
	},
	{
		Title:        "Mental Health Awareness Seminar",
		Description:  "Expert-led discussion on mental wellness, stress management, and community support systems.",
		EventType:    "Health",
		Thumbnail:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400",
		Location:     "Wellness Center, Los Angeles",
		EventDate:    time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC),
		CreatorEmail: "health@wellness.org",
	},
	{
		Title:        "Environmental Conservation Summit",
		Description:  "Global leaders discuss climate action, sustainable development, and environmental protection strategies.",
		EventType:    "Environment",
		Thumbnail:    "https://images.unsplash.com/photo-1569163139394-de4e4f43e4e3?w=400",
		Location:     "Green Conference Hall, Seattle",
		EventDate:    time.Date(2026, 5, 5, 8, 0, 0, 0, time.UTC),
		CreatorEmail: "environment@greenearth.com",
	},
	{
		Title:        "Neighborhood Cleanup Drive",
		Description:  "Community volunteers unite to clean up local parks and promote environmental responsibility.",
		EventType:    "Community",
		Thumbnail:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
		Location:     "Riverside Park, Chicago",
		EventDate:    time.Date(2026, 6, 12, 7, 0, 0, 0, time.UTC),
		CreatorEmail: "cleanup@neighborhood.org",
	},
	{
		Title:        "Digital Literacy Workshop",
		Description:  "Free workshop teaching essential computer skills, online safety, and digital communication.",
		EventType:    "Education",
		Thumbnail:    "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400",
		Location:     "Public Library, San Francisco",
		EventDate:    time.Date(2026, 7, 18, 13, 0, 0, 0, time.UTC),
		CreatorEmail: "digital@literacy.org",
	},
	{
		Title:        "Yoga and Mindfulness Retreat",
		Description:  "Weekend retreat focusing on holistic health, meditation, and personal wellness practices.",
		EventType:    "Health",
		Thumbnail:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
		Location:     "Mountain Wellness Resort, Colorado",
		EventDate:    time.Date(2026, 8, 22, 6, 0, 0, 0, time.UTC),
		CreatorEmail: "yoga@mindfulretreat.com",
	},
	{
		Title:        "Climate Change Awareness Campaign",
		Description:  "Interactive campaign raising awareness about climate change impacts and sustainable solutions.",
		EventType:    "Environment",
		Thumbnail:    "https://images.unsplash.com/photo-1569163139394-de4e4f43e4e3?w=400",
		Location:     "Environmental Center, Portland",
		EventDate:    time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		CreatorEmail: "climate@awareness.org",
	},
	{
		Title:        "Community Art Exhibition",
		Description:  "Showcase of local artists' work celebrating cultural diversity and creative expression.",
		EventType:    "Community",
		Thumbnail:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
		Location:     "Community Arts Center, Miami",
		EventDate:    time.Date(2026, 10, 8, 18, 0, 0, 0, time.UTC),
		CreatorEmail: "art@communitycenter.com",
	},
}

// SampleUsers covers the three roles.
var SampleUsers = []models.User{
	{Email: "john@example.com", DisplayName: "John Doe", Role: models.RoleUser},
	{Email: "jane@example.com", DisplayName: "Jane Smith", Role: models.RoleOrganizer},
	{Email: "admin@socialevents.com", DisplayName: "Admin User", Role: models.RoleAdmin},
}

// Run wipes the event catalog, inserts the samples and upserts the sample
// users. Joins referencing wiped events are removed too.
func Run(db *gorm.DB) error {
	now := time.Now()

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Join{}).Error; err != nil {
		return fmt.Errorf("failed to wipe joins: %w", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Event{}).Error; err != nil {
		return fmt.Errorf("failed to wipe events: %w", err)
	}

	events := make([]models.Event, len(SampleEvents))
	copy(events, SampleEvents)
	for i := range events {
		events[i].CreatedAt = now
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to insert sample events: %w", err)
	}
	slog.Info("sample events inserted", "count", len(events))

	for _, u := range SampleUsers {
		u.CreatedAt = now
		u.LastLogin = now
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"display_name": u.DisplayName,
				"photo_url":    u.PhotoURL,
				"role":         u.Role,
				"last_login":   now,
			}),
		}).Create(&u).Error
		if err != nil {
			return fmt.Errorf("failed to upsert user %s: %w", u.Email, err)
		}
	}
	slog.Info("sample users upserted", "count", len(SampleUsers))

	return nil
}
