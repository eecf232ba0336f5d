package sync_quotes

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

// SyncQuotesRequest HTTP request model
// Направление по умолчанию - both
type SyncQuotesRequest struct {
	EventStatus *string `json:"eventStatus,omitempty"`
	QuoteStatus *string `json:"quoteStatus,omitempty"`
	Direction   *string `json:"direction,omitempty"`
}

// EventStateResponse состояние события после синхронизации
type EventStateResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	ColorCode string `json:"colorCode"`
	UpdatedAt string `json:"updatedAt"`
}

// QuoteStateResponse состояние предложения после синхронизации
type QuoteStateResponse struct {
	ID          int64  `json:"id"`
	QuoteNumber string `json:"quoteNumber"`
	Status      string `json:"status"`
}

// SyncQuotesResponse HTTP response model
type SyncQuotesResponse struct {
	Event         EventStateResponse   `json:"event"`
	Quotes        []QuoteStateResponse `json:"quotes"`
	EventUpdated  bool                 `json:"eventUpdated"`
	QuotesUpdated int                  `json:"quotesUpdated"`
	Changes       []string             `json:"changes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Валидность статусов проверяется здесь, направление - в use case
func (r *SyncQuotesRequest) ToUseCaseRequest(eventID int64) (*syncStatuses.Request, bool) {
	req := &syncStatuses.Request{
		EventID:   eventID,
		Direction: syncStatuses.DirectionBoth,
	}

	if r.Direction != nil {
		req.Direction = syncStatuses.Direction(*r.Direction)
	}

	if r.EventStatus != nil {
		status, ok := domain.ValidEventStatus(*r.EventStatus)
		if !ok {
			return nil, false
		}
		req.EventStatus = &status
	}

	if r.QuoteStatus != nil {
		status, ok := domain.ValidQuoteStatus(*r.QuoteStatus)
		if !ok {
			return nil, false
		}
		req.QuoteStatus = &status
	}

	return req, true
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncStatuses.Response) *SyncQuotesResponse {
	out := &SyncQuotesResponse{
		Event: EventStateResponse{
			ID:        resp.Event.ID,
			Status:    string(resp.Event.Status),
			ColorCode: resp.Event.ColorCode,
			UpdatedAt: resp.Event.UpdatedAt.Format(time.RFC3339),
		},
		Quotes:        make([]QuoteStateResponse, 0, len(resp.Quotes)),
		EventUpdated:  resp.EventUpdated,
		QuotesUpdated: resp.QuotesUpdated,
		Changes:       resp.Changes,
	}

	for _, q := range resp.Quotes {
		out.Quotes = append(out.Quotes, QuoteStateResponse{
			ID:          q.ID,
			QuoteNumber: q.QuoteNumber,
			Status:      string(q.Status),
		})
	}

	return out
}
