package sync_statuses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

func planEvent(status domain.EventStatus) *domain.Event {
	return &domain.Event{ID: 1, Status: status}
}

func planQuote(id int64, status domain.QuoteStatus) *domain.Quote {
	eventID := int64(1)
	return &domain.Quote{ID: id, EventID: &eventID, Status: status}
}

func eventStatusPtr(s domain.EventStatus) *domain.EventStatus { return &s }
func quoteStatusPtr(s domain.QuoteStatus) *domain.QuoteStatus { return &s }

func TestBuildPlanEventCancellation(t *testing.T) {
	quotes := []*domain.Quote{
		planQuote(10, domain.QuoteStatusDraft),
		planQuote(11, domain.QuoteStatusSent),
		planQuote(12, domain.QuoteStatusViewed),
		planQuote(13, domain.QuoteStatusRejected),
		planQuote(14, domain.QuoteStatusAccepted),
		planQuote(15, domain.QuoteStatusExpired),
	}

	p, err := buildPlan(planEvent(domain.EventStatusQuoted), quotes, &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusCancelled),
		Direction:   DirectionEventToQuotes,
	})
	require.NoError(t, err)

	require.NotNil(t, p.eventTarget)
	assert.Equal(t, domain.EventStatusCancelled, *p.eventTarget)

	// Экспайрятся все, включая отклонённое; принятое и уже истёкшее не трогаем
	require.Len(t, p.batches, 1)
	assert.Equal(t, domain.QuoteStatusExpired, p.batches[0].target)
	assert.Equal(t, []int64{10, 11, 12, 13}, p.batches[0].ids)
}

func TestBuildPlanEventConfirmation(t *testing.T) {
	quotes := []*domain.Quote{
		planQuote(10, domain.QuoteStatusDraft),
		planQuote(11, domain.QuoteStatusSent),
		planQuote(12, domain.QuoteStatusViewed),
		planQuote(13, domain.QuoteStatusRejected),
	}

	p, err := buildPlan(planEvent(domain.EventStatusQuoted), quotes, &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusConfirmed),
		Direction:   DirectionEventToQuotes,
	})
	require.NoError(t, err)

	require.NotNil(t, p.eventTarget)
	assert.Equal(t, domain.EventStatusConfirmed, *p.eventTarget)

	// Принимаются отправленные и просмотренные; черновик и отклонённое не трогаем
	require.Len(t, p.batches, 1)
	assert.Equal(t, domain.QuoteStatusAccepted, p.batches[0].target)
	assert.Equal(t, []int64{11, 12}, p.batches[0].ids)
}

func TestBuildPlanIllegalEventTransition(t *testing.T) {
	_, err := buildPlan(planEvent(domain.EventStatusCancelled), nil, &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusConfirmed),
		Direction:   DirectionEventToQuotes,
	})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestBuildPlanQuoteToEvent(t *testing.T) {
	tests := []struct {
		name        string
		eventStatus domain.EventStatus
		quotes      []*domain.Quote
		quoteStatus domain.QuoteStatus
		wantTarget  *domain.EventStatus
	}{
		{
			name:        "принятое предложение подтверждает событие",
			eventStatus: domain.EventStatusQuoted,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)},
			quoteStatus: domain.QuoteStatusAccepted,
			wantTarget:  eventStatusPtr(domain.EventStatusConfirmed),
		},
		{
			name:        "событие уже подтверждено - изменений нет",
			eventStatus: domain.EventStatusConfirmed,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)},
			quoteStatus: domain.QuoteStatusAccepted,
			wantTarget:  nil,
		},
		{
			name:        "все предложения отклонены - откат к RESERVED",
			eventStatus: domain.EventStatusQuoted,
			quotes: []*domain.Quote{
				planQuote(10, domain.QuoteStatusRejected),
				planQuote(11, domain.QuoteStatusRejected),
			},
			quoteStatus: domain.QuoteStatusRejected,
			wantTarget:  eventStatusPtr(domain.EventStatusReserved),
		},
		{
			name:        "откат к RESERVED выполняется даже из CANCELLED",
			eventStatus: domain.EventStatusCancelled,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusRejected)},
			quoteStatus: domain.QuoteStatusRejected,
			wantTarget:  eventStatusPtr(domain.EventStatusReserved),
		},
		{
			name:        "отклонено не всё - событие не откатывается",
			eventStatus: domain.EventStatusQuoted,
			quotes: []*domain.Quote{
				planQuote(10, domain.QuoteStatusRejected),
				planQuote(11, domain.QuoteStatusSent),
			},
			quoteStatus: domain.QuoteStatusRejected,
			wantTarget:  nil,
		},
		{
			name:        "без предложений отката нет",
			eventStatus: domain.EventStatusQuoted,
			quotes:      nil,
			quoteStatus: domain.QuoteStatusRejected,
			wantTarget:  nil,
		},
		{
			name:        "отправленное предложение переводит RESERVED в QUOTED",
			eventStatus: domain.EventStatusReserved,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusSent)},
			quoteStatus: domain.QuoteStatusSent,
			wantTarget:  eventStatusPtr(domain.EventStatusQuoted),
		},
		{
			name:        "отправленное предложение не трогает CONFIRMED",
			eventStatus: domain.EventStatusConfirmed,
			quotes:      []*domain.Quote{planQuote(10, domain.QuoteStatusSent)},
			quoteStatus: domain.QuoteStatusSent,
			wantTarget:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := buildPlan(planEvent(tt.eventStatus), tt.quotes, &Request{
				EventID:     1,
				QuoteStatus: quoteStatusPtr(tt.quoteStatus),
				Direction:   DirectionQuoteToEvent,
			})
			require.NoError(t, err)

			if tt.wantTarget == nil {
				assert.Nil(t, p.eventTarget)
				assert.Empty(t, p.changes)
			} else {
				require.NotNil(t, p.eventTarget)
				assert.Equal(t, *tt.wantTarget, *p.eventTarget)
			}
			assert.Empty(t, p.batches, "правило quote→event не меняет предложения")
		})
	}
}

func TestBuildPlanAutoReconciliation(t *testing.T) {
	t.Run("принятое предложение подтверждает событие без явного запроса", func(t *testing.T) {
		quotes := []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)}

		p, err := buildPlan(planEvent(domain.EventStatusQuoted), quotes, &Request{
			EventID:   1,
			Direction: DirectionBoth,
		})
		require.NoError(t, err)

		require.NotNil(t, p.eventTarget)
		assert.Equal(t, domain.EventStatusConfirmed, *p.eventTarget)
	})

	t.Run("отправленное предложение котирует RESERVED", func(t *testing.T) {
		quotes := []*domain.Quote{planQuote(10, domain.QuoteStatusViewed)}

		p, err := buildPlan(planEvent(domain.EventStatusReserved), quotes, &Request{
			EventID:   1,
			Direction: DirectionBoth,
		})
		require.NoError(t, err)

		require.NotNil(t, p.eventTarget)
		assert.Equal(t, domain.EventStatusQuoted, *p.eventTarget)
	})

	t.Run("автосверка не выполняется при одностороннем направлении", func(t *testing.T) {
		quotes := []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)}

		p, err := buildPlan(planEvent(domain.EventStatusQuoted), quotes, &Request{
			EventID:     1,
			QuoteStatus: quoteStatusPtr(domain.QuoteStatusSent),
			Direction:   DirectionQuoteToEvent,
		})
		require.NoError(t, err)
		assert.Nil(t, p.eventTarget)
	})
}

func TestBuildPlanIdempotence(t *testing.T) {
	event := planEvent(domain.EventStatusQuoted)
	quotes := []*domain.Quote{
		planQuote(10, domain.QuoteStatusSent),
		planQuote(11, domain.QuoteStatusViewed),
	}
	req := &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusConfirmed),
		Direction:   DirectionBoth,
	}

	first, err := buildPlan(event, quotes, req)
	require.NoError(t, err)
	require.NotNil(t, first.eventTarget)
	require.Len(t, first.batches, 1)

	// Имитация применения первого плана
	event.Status = *first.eventTarget
	for _, q := range quotes {
		q.Status = first.batches[0].target
	}

	second, err := buildPlan(event, quotes, req)
	require.NoError(t, err)
	assert.Nil(t, second.eventTarget)
	assert.Empty(t, second.batches)
	assert.Empty(t, second.changes)
}
