package update_quote_status

import (
	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

// Request модель запроса смены статуса предложения
type Request struct {
	QuoteID int64
	Status  domain.QuoteStatus
}

// Response результат смены статуса с итогом синхронизации события
type Response struct {
	Quote *domain.Quote
	Sync  *syncStatuses.Response // nil, если предложение не привязано к событию
}
