package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEventTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    EventStatus
		to      EventStatus
		wantErr bool
	}{
		{name: "RESERVED -> QUOTED", from: EventStatusReserved, to: EventStatusQuoted},
		{name: "RESERVED -> CONFIRMED", from: EventStatusReserved, to: EventStatusConfirmed},
		{name: "RESERVED -> CANCELLED", from: EventStatusReserved, to: EventStatusCancelled},
		{name: "QUOTED -> CONFIRMED", from: EventStatusQuoted, to: EventStatusConfirmed},
		{name: "QUOTED -> CANCELLED", from: EventStatusQuoted, to: EventStatusCancelled},
		{name: "CONFIRMED -> CANCELLED", from: EventStatusConfirmed, to: EventStatusCancelled},
		{name: "переход в тот же статус - no-op", from: EventStatusQuoted, to: EventStatusQuoted},
		{name: "QUOTED -> RESERVED запрещён", from: EventStatusQuoted, to: EventStatusReserved, wantErr: true},
		{name: "CONFIRMED -> QUOTED запрещён", from: EventStatusConfirmed, to: EventStatusQuoted, wantErr: true},
		{name: "CANCELLED терминален", from: EventStatusCancelled, to: EventStatusReserved, wantErr: true},
		{name: "CANCELLED -> CONFIRMED запрещён", from: EventStatusCancelled, to: EventStatusConfirmed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIllegalTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidEventStatus(t *testing.T) {
	status, ok := ValidEventStatus("CONFIRMED")
	require.True(t, ok)
	assert.Equal(t, EventStatusConfirmed, status)

	_, ok = ValidEventStatus("DELETED")
	assert.False(t, ok)

	// Статусы регистрозависимы
	_, ok = ValidEventStatus("confirmed")
	assert.False(t, ok)
}

func TestEventStatusColor(t *testing.T) {
	assert.Equal(t, "#f59e0b", EventStatusColor(EventStatusReserved))
	assert.Equal(t, "#3b82f6", EventStatusColor(EventStatusQuoted))
	assert.Equal(t, "#10b981", EventStatusColor(EventStatusConfirmed))
	assert.Equal(t, "#ef4444", EventStatusColor(EventStatusCancelled))

	// Неизвестный статус получает цвет RESERVED
	assert.Equal(t, "#f59e0b", EventStatusColor(EventStatus("UNKNOWN")))
}

func TestEventIsActive(t *testing.T) {
	event := &Event{Status: EventStatusConfirmed}
	assert.True(t, event.IsActive())

	event.Status = EventStatusCancelled
	assert.False(t, event.IsActive())
}

func TestEventResource(t *testing.T) {
	roomID := int64(5)
	venueID := int64(2)

	tests := []struct {
		name     string
		event    *Event
		wantKind ResourceKind
		wantID   int64
		wantErr  error
	}{
		{
			name:     "событие в зале",
			event:    &Event{RoomID: &roomID},
			wantKind: ResourceKindRoom,
			wantID:   5,
		},
		{
			name:     "событие на всей площадке",
			event:    &Event{VenueID: &venueID},
			wantKind: ResourceKindVenue,
			wantID:   2,
		},
		{
			name:    "ресурс не указан",
			event:   &Event{},
			wantErr: ErrMissingResource,
		},
		{
			name:    "указаны оба ресурса",
			event:   &Event{RoomID: &roomID, VenueID: &venueID},
			wantErr: ErrAmbiguousResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, err := tt.event.Resource()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
