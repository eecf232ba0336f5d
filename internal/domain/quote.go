package domain

import (
	"fmt"
	"time"
)

// QuoteStatus статус коммерческого предложения
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"    // Черновик
	QuoteStatusSent     QuoteStatus = "SENT"     // Отправлено клиенту
	QuoteStatusViewed   QuoteStatus = "VIEWED"   // Просмотрено клиентом
	QuoteStatusAccepted QuoteStatus = "ACCEPTED" // Принято клиентом (терминальный)
	QuoteStatusRejected QuoteStatus = "REJECTED" // Отклонено (терминальный)
	QuoteStatusExpired  QuoteStatus = "EXPIRED"  // Истекло (терминальный, принудительный)
)

// quoteTransitions таблица допустимых прямых переходов статуса предложения
// Терминальные статусы не покидаются; единственное исключение - принудительный
// EXPIRED при отмене события (см. CanBeForceExpired)
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent, QuoteStatusRejected, QuoteStatusExpired},
	QuoteStatusSent:     {QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
	QuoteStatusViewed:   {QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
	QuoteStatusAccepted: {},
	QuoteStatusRejected: {},
	QuoteStatusExpired:  {},
}

// ValidQuoteStatus проверяет, что строка является известным статусом предложения
func ValidQuoteStatus(s string) (QuoteStatus, bool) {
	status := QuoteStatus(s)
	_, ok := quoteTransitions[status]
	return status, ok
}

// ValidateQuoteTransition проверяет допустимость прямого перехода статуса
// Переход в текущий статус разрешён как no-op (идемпотентность)
func ValidateQuoteTransition(from, to QuoteStatus) error {
	if from == to {
		return nil
	}
	for _, allowed := range quoteTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: quote %s -> %s", ErrIllegalTransition, from, to)
}

// IsTerminalQuoteStatus возвращает true для терминальных статусов
func IsTerminalQuoteStatus(status QuoteStatus) bool {
	return len(quoteTransitions[status]) == 0
}

// Quote коммерческое предложение по событию
// К одному событию может быть привязано несколько предложений (ревизии)
type Quote struct {
	ID            int64
	EventID       *int64
	QuoteNumber   string
	TrackingToken string // Публичный токен для отслеживания просмотра клиентом
	Status        QuoteStatus
	Total         float64
	ValidUntil    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal возвращает true, если предложение в терминальном статусе
func (q *Quote) IsTerminal() bool {
	return IsTerminalQuoteStatus(q.Status)
}

// CanBeForceExpired возвращает true, если предложение можно принудительно
// перевести в EXPIRED каскадом отмены события
// Принятое предложение сохраняется как исторический факт и не экспайрится -
// бизнес-решение, зафиксированное явно, а не выведенное из таблицы переходов
func (q *Quote) CanBeForceExpired() bool {
	return q.Status != QuoteStatusAccepted && q.Status != QuoteStatusExpired
}

// IsExpiredByTime возвращает true, если срок действия предложения прошёл
// и оно ещё не в терминальном статусе
func (q *Quote) IsExpiredByTime(now time.Time) bool {
	return !q.IsTerminal() && !q.ValidUntil.IsZero() && q.ValidUntil.Before(now)
}
