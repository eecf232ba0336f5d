package sync_statuses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

func TestBuildReportRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		eventStatus domain.EventStatus
		quotes      []*domain.Quote
		needsSync   bool
	}{
		{
			name:        "принятое предложение при неподтверждённом событии",
			eventStatus: domain.EventStatusQuoted,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)},
			needsSync:   true,
		},
		{
			name:        "отправленное предложение при RESERVED",
			eventStatus: domain.EventStatusReserved,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusSent)},
			needsSync:   true,
		},
		{
			name:        "все предложения отклонены",
			eventStatus: domain.EventStatusQuoted,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusRejected)},
			needsSync:   true,
		},
		{
			name:        "отменённое событие с живыми предложениями",
			eventStatus: domain.EventStatusCancelled,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusSent)},
			needsSync:   true,
		},
		{
			name:        "согласованное состояние",
			eventStatus: domain.EventStatusConfirmed,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)},
			needsSync:   false,
		},
		{
			name:        "событие без предложений",
			eventStatus: domain.EventStatusReserved,
			quotes:      nil,
			needsSync:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(planEvent(tt.eventStatus), tt.quotes)

			assert.Equal(t, tt.needsSync, report.NeedsSync)
			if tt.needsSync {
				require.NotEmpty(t, report.Recommendations)
			} else {
				assert.Empty(t, report.Recommendations)
			}
		})
	}
}
