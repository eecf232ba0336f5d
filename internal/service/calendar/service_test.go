package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
	resourceStorage "github.com/kmalt/EMS-EventService/internal/infra/storage/resource"
)

type fakeEventRepo struct {
	events []*domain.Event
	filter domain.EventsFilter
}

func (r *fakeEventRepo) ListWithFilter(_ context.Context, filter domain.EventsFilter) ([]*domain.Event, error) {
	r.filter = filter
	return r.events, nil
}

type fakeResourceRepo struct {
	location *domain.Location
}

func (r *fakeResourceRepo) GetLocation(_ context.Context, kind domain.ResourceKind, id int64) (*domain.Location, error) {
	if r.location != nil && r.location.Kind == kind && r.location.ID == id {
		return r.location, nil
	}
	if kind == domain.ResourceKindRoom {
		return nil, resourceStorage.ErrRoomNotFound
	}
	return nil, resourceStorage.ErrVenueNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func calendarEvent(id int64, title string, status domain.EventStatus) *domain.Event {
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:       id,
		Title:    title,
		Interval: domain.TimeInterval{Start: start, End: start.Add(2 * time.Hour)},
		Status:   status,
	}
}

func TestBuildFeed(t *testing.T) {
	roomLocation := &domain.Location{Kind: domain.ResourceKindRoom, ID: 1, Name: "Малый зал"}

	t.Run("лента событий зала", func(t *testing.T) {
		events := &fakeEventRepo{events: []*domain.Event{
			calendarEvent(1, "Свадьба", domain.EventStatusConfirmed),
			calendarEvent(2, "Юбилей", domain.EventStatusReserved),
		}}
		svc := NewService(events, &fakeResourceRepo{location: roomLocation}, noopLogger{})

		feed, err := svc.BuildFeed(context.Background(), domain.ResourceKindRoom, 1)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
		assert.Contains(t, feed, "PRODID:-//EMS//EventService//EN")
		assert.Contains(t, feed, "UID:event-1@ems")
		assert.Contains(t, feed, "UID:event-2@ems")
		assert.Contains(t, feed, "SUMMARY:Свадьба")
		assert.Contains(t, feed, "STATUS:CONFIRMED")
		assert.Contains(t, feed, "STATUS:TENTATIVE")

		// Фильтр привязан к залу, отменённые события не запрашиваются
		require.NotNil(t, events.filter.RoomID)
		assert.Equal(t, int64(1), *events.filter.RoomID)
		assert.Nil(t, events.filter.VenueID)
		assert.False(t, events.filter.IncludeCancelled)
	})

	t.Run("лента площадки фильтруется по venueId", func(t *testing.T) {
		venueLocation := &domain.Location{Kind: domain.ResourceKindVenue, ID: 3, Name: "Лофт"}
		events := &fakeEventRepo{}
		svc := NewService(events, &fakeResourceRepo{location: venueLocation}, noopLogger{})

		feed, err := svc.BuildFeed(context.Background(), domain.ResourceKindVenue, 3)
		require.NoError(t, err)

		assert.Contains(t, feed, "BEGIN:VCALENDAR")
		require.NotNil(t, events.filter.VenueID)
		assert.Equal(t, int64(3), *events.filter.VenueID)
		assert.Nil(t, events.filter.RoomID)
	})

	t.Run("ресурс не найден", func(t *testing.T) {
		svc := NewService(&fakeEventRepo{}, &fakeResourceRepo{}, noopLogger{})

		_, err := svc.BuildFeed(context.Background(), domain.ResourceKindRoom, 99)
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func TestICalStatus(t *testing.T) {
	assert.Equal(t, "CONFIRMED", string(icalStatus(domain.EventStatusConfirmed)))
	assert.Equal(t, "TENTATIVE", string(icalStatus(domain.EventStatusReserved)))
	assert.Equal(t, "TENTATIVE", string(icalStatus(domain.EventStatusQuoted)))
}
