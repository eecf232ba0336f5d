package sync_statuses

import "github.com/kmalt/EMS-EventService/internal/domain"

// Direction направление синхронизации статусов
type Direction string

const (
	DirectionEventToQuotes Direction = "event-to-quotes"
	DirectionQuoteToEvent  Direction = "quote-to-event"
	DirectionBoth          Direction = "both"
)

// ValidDirection проверяет, что строка является известным направлением
func ValidDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionEventToQuotes, DirectionQuoteToEvent, DirectionBoth:
		return Direction(s), true
	default:
		return "", false
	}
}

// includesEventToQuotes проверяет, что направление включает event-to-quotes
func (d Direction) includesEventToQuotes() bool {
	return d == DirectionEventToQuotes || d == DirectionBoth
}

// includesQuoteToEvent проверяет, что направление включает quote-to-event
func (d Direction) includesQuoteToEvent() bool {
	return d == DirectionQuoteToEvent || d == DirectionBoth
}

// Request модель запроса синхронизации
type Request struct {
	EventID     int64
	EventStatus *domain.EventStatus // Запрошенный статус события (правило event→quotes)
	QuoteStatus *domain.QuoteStatus // Статус предложения, вызвавший синхронизацию (правило quote→event)
	Direction   Direction
}

// Response результат синхронизации
// EventUpdated и QuotesUpdated отражают фактически применённые изменения
type Response struct {
	Event         *domain.Event
	Quotes        []*domain.Quote
	EventUpdated  bool
	QuotesUpdated int
	Changes       []string
}
