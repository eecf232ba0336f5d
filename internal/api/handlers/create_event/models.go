package create_event

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/service/events/models"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Title       string  `json:"title"`
	ClientID    *int64  `json:"clientId,omitempty"`
	StartDate   string  `json:"startDate"` // RFC 3339
	EndDate     string  `json:"endDate"`   // RFC 3339
	RoomID      *int64  `json:"roomId,omitempty"`
	VenueID     *int64  `json:"venueId,omitempty"`
	IsFullVenue bool    `json:"isFullVenue,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEventRequest) ToServiceRequest() (*models.CreateEventRequest, error) {
	startDate, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateEventRequest{
		Title:       r.Title,
		ClientID:    r.ClientID,
		StartDate:   startDate,
		EndDate:     endDate,
		RoomID:      r.RoomID,
		VenueID:     r.VenueID,
		IsFullVenue: r.IsFullVenue,
		Notes:       r.Notes,
	}, nil
}
