package domain

import (
	"errors"
	"fmt"
	"time"
)

// EventStatus статус события
type EventStatus string

const (
	EventStatusReserved  EventStatus = "RESERVED"  // Дата зарезервирована, без коммерческого предложения
	EventStatusQuoted    EventStatus = "QUOTED"    // Коммерческое предложение создано, но не принято
	EventStatusConfirmed EventStatus = "CONFIRMED" // Предложение принято, событие подтверждено
	EventStatusCancelled EventStatus = "CANCELLED" // Событие отменено (soft-delete)
)

// ErrIllegalTransition возвращается при недопустимом переходе статуса
var ErrIllegalTransition = errors.New("illegal status transition")

// eventTransitions таблица допустимых прямых переходов статуса события
// CANCELLED терминален для прямых запросов; откат CONFIRMED -> RESERVED
// выполняет только движок синхронизации своей derived-логикой
var eventTransitions = map[EventStatus][]EventStatus{
	EventStatusReserved:  {EventStatusQuoted, EventStatusConfirmed, EventStatusCancelled},
	EventStatusQuoted:    {EventStatusConfirmed, EventStatusCancelled},
	EventStatusConfirmed: {EventStatusCancelled},
	EventStatusCancelled: {},
}

// eventStatusColors цвет отображения по умолчанию для каждого статуса
var eventStatusColors = map[EventStatus]string{
	EventStatusReserved:  "#f59e0b",
	EventStatusQuoted:    "#3b82f6",
	EventStatusConfirmed: "#10b981",
	EventStatusCancelled: "#ef4444",
}

// ValidEventStatus проверяет, что строка является известным статусом события
func ValidEventStatus(s string) (EventStatus, bool) {
	status := EventStatus(s)
	_, ok := eventTransitions[status]
	return status, ok
}

// ValidateEventTransition проверяет допустимость прямого перехода статуса
// Переход в текущий статус разрешён как no-op (идемпотентность)
func ValidateEventTransition(from, to EventStatus) error {
	if from == to {
		return nil
	}
	for _, allowed := range eventTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: event %s -> %s", ErrIllegalTransition, from, to)
}

// EventStatusColor возвращает цвет отображения по умолчанию для статуса
func EventStatusColor(status EventStatus) string {
	if color, ok := eventStatusColors[status]; ok {
		return color
	}
	return eventStatusColors[EventStatusReserved]
}

// Event событие (бронирование зала или всей площадки на интервал времени)
type Event struct {
	ID          int64
	Title       string
	ClientID    *int64
	Interval    TimeInterval
	RoomID      *int64
	VenueID     *int64
	IsFullVenue bool
	Status      EventStatus
	ColorCode   string // Производный атрибут отображения, не участвует в инвариантах
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если событие участвует в проверках конфликтов
func (e *Event) IsActive() bool {
	return e.Status != EventStatusCancelled
}

// Resource возвращает ресурс события (зал или площадка)
// Возвращает ErrMissingResource, если не указан ни один
func (e *Event) Resource() (ResourceKind, int64, error) {
	return ResolveResource(e.RoomID, e.VenueID)
}
