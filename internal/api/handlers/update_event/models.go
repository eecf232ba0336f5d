package update_event

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/service/events/models"
)

// UpdateEventRequest HTTP request model частичного обновления события
type UpdateEventRequest struct {
	Title     *string `json:"title,omitempty"`
	ClientID  *int64  `json:"clientId,omitempty"`
	StartDate *string `json:"startDate,omitempty"` // RFC 3339
	EndDate   *string `json:"endDate,omitempty"`   // RFC 3339
	RoomID    *int64  `json:"roomId,omitempty"`
	VenueID   *int64  `json:"venueId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateEventRequest) ToServiceRequest() (*models.UpdateEventRequest, error) {
	req := &models.UpdateEventRequest{
		Title:    r.Title,
		ClientID: r.ClientID,
		RoomID:   r.RoomID,
		VenueID:  r.VenueID,
		Notes:    r.Notes,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
