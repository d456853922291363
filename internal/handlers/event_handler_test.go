package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/socialevents/social-events-backend/internal/models"
	"github.com/socialevents/social-events-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventStore struct {
	list          func(q services.ListEventsQuery) (*dto.EventListResponse, error)
	count         func() (int64, error)
	getByID       func(id uuid.UUID) (*models.Event, error)
	create        func(creatorEmail string, req *dto.CreateEventRequest) (*models.Event, error)
	update        func(id uuid.UUID, callerEmail string, req *dto.UpdateEventRequest) (*models.Event, error)
	deleteFn      func(id uuid.UUID, callerEmail string) error
	listByCreator func(email string) ([]models.Event, error)
}

func (s *stubEventStore) List(q services.ListEventsQuery) (*dto.EventListResponse, error) {
	return s.list(q)
}
func (s *stubEventStore) Count() (int64, error) { return s.count() }
func (s *stubEventStore) GetByID(id uuid.UUID) (*models.Event, error) {
	return s.getByID(id)
}
func (s *stubEventStore) Create(creatorEmail string, req *dto.CreateEventRequest) (*models.Event, error) {
	return s.create(creatorEmail, req)
}
func (s *stubEventStore) Update(id uuid.UUID, callerEmail string, req *dto.UpdateEventRequest) (*models.Event, error) {
	return s.update(id, callerEmail, req)
}
func (s *stubEventStore) Delete(id uuid.UUID, callerEmail string) error {
	return s.deleteFn(id, callerEmail)
}
func (s *stubEventStore) ListByCreator(email string) ([]models.Event, error) {
	return s.listByCreator(email)
}

// asPrincipal simulates the auth middleware for a fixed caller.
func asPrincipal(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity.SetPrincipal(c, &identity.Principal{Email: email, Name: "Test User"})
		return c.Next()
	}
}

func newEventTestApp(store EventStore, caller string) *fiber.App {
	h := NewEventHandler(store)
	app := fiber.New()
	app.Get("/events", h.List)
	app.Get("/events/count", h.Count)
	app.Get("/events/:id", h.Get)
	app.Post("/events", asPrincipal(caller), h.Create)
	app.Put("/events/:id", asPrincipal(caller), h.Update)
	app.Delete("/events/:id", asPrincipal(caller), h.Delete)
	app.Get("/users/me/events", asPrincipal(caller), h.MyEvents)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestListEventsQueryParams(t *testing.T) {
	var got services.ListEventsQuery
	store := &stubEventStore{
		list: func(q services.ListEventsQuery) (*dto.EventListResponse, error) {
			got = q
			return &dto.EventListResponse{Events: []models.Event{}, Total: 20, Page: q.Page, TotalPages: 3}, nil
		},
	}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/events?type=Health&search=yoga&location=denver&dateRange=thisWeek&sort=newest&page=3&limit=9", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Health", got.EventType)
	assert.Equal(t, "yoga", got.Search)
	assert.Equal(t, "denver", got.Location)
	assert.Equal(t, "thisWeek", got.DateRange)
	assert.Equal(t, "newest", got.Sort)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 9, got.Limit)

	var body dto.EventListResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(20), body.Total)
	assert.Equal(t, 3, body.TotalPages)
	assert.Empty(t, body.Events)
}

func TestGetEventInvalidID(t *testing.T) {
	store := &stubEventStore{
		getByID: func(uuid.UUID) (*models.Event, error) {
			t.Fatal("store must not be called for malformed ids")
			return nil, nil
		},
	}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetEventNotFound(t *testing.T) {
	store := &stubEventStore{
		getByID: func(uuid.UUID) (*models.Event, error) { return nil, services.ErrEventNotFound },
	}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEventSuccess(t *testing.T) {
	id := uuid.New()
	event := &models.Event{
		ID:           id,
		Title:        "Yoga Retreat",
		EventType:    "Health",
		Thumbnail:    "https://img/1.jpg",
		Location:     "Denver",
		EventDate:    time.Date(2026, 8, 22, 6, 0, 0, 0, time.UTC),
		CreatorEmail: "yoga@mindfulretreat.com",
	}
	store := &stubEventStore{
		getByID: func(got uuid.UUID) (*models.Event, error) {
			assert.Equal(t, id, got)
			return event, nil
		},
	}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.Event
	decodeBody(t, resp, &body)
	assert.Equal(t, event.Title, body.Title)
	assert.Equal(t, event.CreatorEmail, body.CreatorEmail)
}

func TestCreateEventValidationFailure(t *testing.T) {
	store := &stubEventStore{
		create: func(string, *dto.CreateEventRequest) (*models.Event, error) {
			return nil, fmt.Errorf("%w: eventDate must be in the future", services.ErrValidation)
		},
	}
	app := newEventTestApp(store, "a@b.c")

	req := httptest.NewRequest(http.MethodPost, "/events",
		strings.NewReader(`{"title":"x","eventType":"y","location":"z","eventDate":"2001-01-01T00:00:00Z","thumbnail":"https://img/1.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateEventUsesPrincipalEmail(t *testing.T) {
	var creator string
	store := &stubEventStore{
		create: func(email string, req *dto.CreateEventRequest) (*models.Event, error) {
			creator = email
			return &models.Event{ID: uuid.New(), Title: req.Title, CreatorEmail: email}, nil
		},
	}
	app := newEventTestApp(store, "jane@example.com")

	// creatorEmail in the body must be ignored.
	req := httptest.NewRequest(http.MethodPost, "/events",
		strings.NewReader(`{"title":"Picnic","creatorEmail":"mallory@evil.com","eventType":"Community","location":"Park","eventDate":"2030-01-01T00:00:00Z","thumbnail":"https://img/1.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "jane@example.com", creator)
}

func TestUpdateEventNotOwner(t *testing.T) {
	store := &stubEventStore{
		update: func(uuid.UUID, string, *dto.UpdateEventRequest) (*models.Event, error) {
			return nil, services.ErrNotOwner
		},
	}
	app := newEventTestApp(store, "a@b.c")

	req := httptest.NewRequest(http.MethodPut, "/events/"+uuid.NewString(),
		strings.NewReader(`{"title":"New title"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteEventNotOwner(t *testing.T) {
	store := &stubEventStore{
		deleteFn: func(uuid.UUID, string) error { return services.ErrNotOwner },
	}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/events/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteEventSuccess(t *testing.T) {
	id := uuid.New()
	store := &stubEventStore{
		deleteFn: func(got uuid.UUID, caller string) error {
			assert.Equal(t, id, got)
			assert.Equal(t, "owner@x.com", caller)
			return nil
		},
	}
	app := newEventTestApp(store, "owner@x.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/events/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMyEvents(t *testing.T) {
	store := &stubEventStore{
		listByCreator: func(email string) ([]models.Event, error) {
			assert.Equal(t, "jane@example.com", email)
			return []models.Event{{Title: "Mine"}}, nil
		},
	}
	app := newEventTestApp(store, "jane@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me/events", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.Event
	decodeBody(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Mine", body[0].Title)
}

func TestEventCount(t *testing.T) {
	store := &stubEventStore{count: func() (int64, error) { return 42, nil }}
	app := newEventTestApp(store, "a@b.c")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/count", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.EventCountResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(42), body.Count)
}
