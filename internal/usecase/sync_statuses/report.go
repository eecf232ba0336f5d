package sync_statuses

import "github.com/kmalt/EMS-EventService/internal/domain"

// Report состояние синхронизации события и его предложений
// Используется read-only эндпоинтом диагностики
type Report struct {
	EventStatus     domain.EventStatus         `json:"eventStatus"`
	QuotesCount     int                        `json:"quotesCount"`
	QuotesByStatus  map[domain.QuoteStatus]int `json:"quotesByStatus"`
	Recommendations []string                   `json:"recommendations"`
	NeedsSync       bool                       `json:"needsSync"`
}

// BuildReport анализирует текущее состояние и возвращает рекомендации
// по синхронизации без применения каких-либо изменений
func BuildReport(event *domain.Event, quotes []*domain.Quote) *Report {
	report := &Report{
		EventStatus:     event.Status,
		QuotesCount:     len(quotes),
		QuotesByStatus:  make(map[domain.QuoteStatus]int),
		Recommendations: make([]string, 0),
	}

	var hasAccepted, hasSentOrViewed, hasNonExpired bool
	allRejected := len(quotes) > 0

	for _, q := range quotes {
		report.QuotesByStatus[q.Status]++

		switch q.Status {
		case domain.QuoteStatusAccepted:
			hasAccepted = true
		case domain.QuoteStatusSent, domain.QuoteStatusViewed:
			hasSentOrViewed = true
		}
		if q.Status != domain.QuoteStatusRejected {
			allRejected = false
		}
		if q.CanBeForceExpired() {
			hasNonExpired = true
		}
	}

	recommend := func(msg string) {
		report.Recommendations = append(report.Recommendations, msg)
		report.NeedsSync = true
	}

	if hasAccepted && event.Status != domain.EventStatusConfirmed {
		recommend("confirm the event: an accepted quote is present")
	}
	if hasSentOrViewed && !hasAccepted && event.Status == domain.EventStatusReserved {
		recommend("mark the event as quoted: a sent quote is present")
	}
	if allRejected && event.Status != domain.EventStatusReserved {
		recommend("all quotes are rejected: consider reopening the event as reserved")
	}
	if event.Status == domain.EventStatusCancelled && hasNonExpired {
		recommend("expire outstanding quotes: the event is cancelled")
	}

	return report
}
