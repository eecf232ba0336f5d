package models

import (
	"errors"
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе события
	ErrInvalidStatus = errors.New("invalid event status")
)

// Request модели

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Title       string     `json:"title"`
	ClientID    *int64     `json:"clientId,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	RoomID      *int64     `json:"roomId,omitempty"`
	VenueID     *int64     `json:"venueId,omitempty"`
	IsFullVenue bool       `json:"isFullVenue,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// UpdateEventRequest запрос на частичное обновление события
// Статус события этим запросом не меняется - для этого есть синхронизация
type UpdateEventRequest struct {
	Title     *string    `json:"title,omitempty"`
	ClientID  *int64     `json:"clientId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	RoomID    *int64     `json:"roomId,omitempty"`
	VenueID   *int64     `json:"venueId,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ListEventsRequest запрос на выборку событий календаря
type ListEventsRequest struct {
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	Status           *string    `json:"status,omitempty"`
	RoomID           *int64     `json:"roomId,omitempty"`
	VenueID          *int64     `json:"venueId,omitempty"`
	ClientID         *int64     `json:"clientId,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListEventsRequest) ToDomainFilter() (domain.EventsFilter, error) {
	filter := domain.EventsFilter{
		From:             r.From,
		To:               r.To,
		RoomID:           r.RoomID,
		VenueID:          r.VenueID,
		ClientID:         r.ClientID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, ok := domain.ValidEventStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ClientID    *int64    `json:"clientId,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	RoomID      *int64    `json:"roomId,omitempty"`
	VenueID     *int64    `json:"venueId,omitempty"`
	IsFullVenue bool      `json:"isFullVenue"`
	Status      string    `json:"status"`
	ColorCode   string    `json:"colorCode"`
	Notes       *string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ConflictResponse краткое описание конфликтующего бронирования
type ConflictResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

// Методы конвертации

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event) *EventResponse {
	if e == nil {
		return nil
	}

	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		ClientID:    e.ClientID,
		StartDate:   e.Interval.Start,
		EndDate:     e.Interval.End,
		RoomID:      e.RoomID,
		VenueID:     e.VenueID,
		IsFullVenue: e.IsFullVenue,
		Status:      string(e.Status),
		ColorCode:   e.ColorCode,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	resp := &EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
	}

	for _, event := range events {
		if eventResp := FromDomainEvent(event); eventResp != nil {
			resp.Events = append(resp.Events, *eventResp)
		}
	}

	return resp
}

// FromDomainConflicts конвертирует конфликтующие бронирования в DTO
func FromDomainConflicts(conflicts []*domain.Booking) []ConflictResponse {
	resp := make([]ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		resp = append(resp, ConflictResponse{
			ID:        c.ID,
			Title:     c.Title,
			StartDate: c.Interval.Start,
			EndDate:   c.Interval.End,
			Status:    string(c.Status),
		})
	}
	return resp
}
