package domain

import (
	"errors"
	"time"
)

// ErrMissingResource возвращается, когда не указан ни зал, ни площадка
var ErrMissingResource = errors.New("either room or venue must be specified")

// ErrAmbiguousResource возвращается, когда указаны и зал, и площадка одновременно
var ErrAmbiguousResource = errors.New("room and venue are mutually exclusive")

// ResourceKind тип бронируемого ресурса
type ResourceKind string

const (
	ResourceKindRoom  ResourceKind = "room"
	ResourceKindVenue ResourceKind = "venue"
)

// ResolveResource определяет ресурс по паре опциональных идентификаторов
// Ровно один из roomID/venueID должен быть задан
func ResolveResource(roomID, venueID *int64) (ResourceKind, int64, error) {
	switch {
	case roomID != nil && venueID != nil:
		return "", 0, ErrAmbiguousResource
	case roomID != nil:
		return ResourceKindRoom, *roomID, nil
	case venueID != nil:
		return ResourceKindVenue, *venueID, nil
	default:
		return "", 0, ErrMissingResource
	}
}

// Booking снимок существующего бронирования ресурса
// Read-only для проверок конфликтов: владеет данными хранилище событий
type Booking struct {
	ID           int64
	ResourceID   int64
	ResourceKind ResourceKind
	Interval     TimeInterval
	Status       EventStatus
	Title        string
}

// BookingFilter фильтр выборки бронирований ресурса
// Статусы намеренно не фильтруются на уровне хранилища:
// исключение CANCELLED - обязанность проверки доступности
type BookingFilter struct {
	ResourceID   int64
	ResourceKind ResourceKind
	From         *time.Time // Начало периода (опционально)
	To           *time.Time // Конец периода (опционально)
}

// EventsFilter фильтр выборки событий для календаря
type EventsFilter struct {
	From             *time.Time
	To               *time.Time
	Status           *EventStatus
	RoomID           *int64
	VenueID          *int64
	ClientID         *int64
	IncludeCancelled bool
}
