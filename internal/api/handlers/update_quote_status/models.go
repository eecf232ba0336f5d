package update_quote_status

import (
	"time"

	updateQuoteStatus "github.com/kmalt/EMS-EventService/internal/usecase/update_quote_status"
)

// UpdateQuoteStatusRequest HTTP request model
type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

// EventSyncResponse итог каскадной синхронизации события
type EventSyncResponse struct {
	EventID      int64    `json:"eventId"`
	EventStatus  string   `json:"eventStatus"`
	EventUpdated bool     `json:"eventUpdated"`
	Changes      []string `json:"changes"`
}

// UpdateQuoteStatusResponse HTTP response model
type UpdateQuoteStatusResponse struct {
	ID          int64              `json:"id"`
	QuoteNumber string             `json:"quoteNumber"`
	Status      string             `json:"status"`
	ValidUntil  string             `json:"validUntil"`
	UpdatedAt   string             `json:"updatedAt"`
	Sync        *EventSyncResponse `json:"sync,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateQuoteStatus.Response) *UpdateQuoteStatusResponse {
	out := &UpdateQuoteStatusResponse{
		ID:          resp.Quote.ID,
		QuoteNumber: resp.Quote.QuoteNumber,
		Status:      string(resp.Quote.Status),
		ValidUntil:  resp.Quote.ValidUntil.Format(time.RFC3339),
		UpdatedAt:   resp.Quote.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Sync != nil {
		out.Sync = &EventSyncResponse{
			EventID:      resp.Sync.Event.ID,
			EventStatus:  string(resp.Sync.Event.Status),
			EventUpdated: resp.Sync.EventUpdated,
			Changes:      resp.Sync.Changes,
		}
	}

	return out
}
