package cancel_event

import (
	"time"

	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

// CancelEventResponse HTTP response model
type CancelEventResponse struct {
	ID            int64    `json:"id"`
	Status        string   `json:"status"`
	ColorCode     string   `json:"colorCode"`
	UpdatedAt     string   `json:"updatedAt"`
	QuotesExpired int      `json:"quotesExpired"`
	Changes       []string `json:"changes"`
}

// FromUseCaseResponse конвертирует ответ движка синхронизации в HTTP response
func FromUseCaseResponse(resp *syncStatuses.Response) *CancelEventResponse {
	return &CancelEventResponse{
		ID:            resp.Event.ID,
		Status:        string(resp.Event.Status),
		ColorCode:     resp.Event.ColorCode,
		UpdatedAt:     resp.Event.UpdatedAt.Format(time.RFC3339),
		QuotesExpired: resp.QuotesUpdated,
		Changes:       resp.Changes,
	}
}
