package models

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// Request модели

// CreateQuoteRequest запрос на создание предложения для события
type CreateQuoteRequest struct {
	Total        float64 `json:"total"`
	ValidityDays *int    `json:"validityDays,omitempty"` // По умолчанию из конфигурации
}

// Response модели

// QuoteResponse ответ с данными предложения
type QuoteResponse struct {
	ID            int64     `json:"id"`
	EventID       *int64    `json:"eventId,omitempty"`
	QuoteNumber   string    `json:"quoteNumber"`
	TrackingToken string    `json:"trackingToken"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
	ValidUntil    time.Time `json:"validUntil"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuoteListResponse ответ со списком предложений
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// Методы конвертации

// FromDomainQuote конвертирует domain модель в DTO
func FromDomainQuote(q *domain.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}

	return &QuoteResponse{
		ID:            q.ID,
		EventID:       q.EventID,
		QuoteNumber:   q.QuoteNumber,
		TrackingToken: q.TrackingToken,
		Status:        string(q.Status),
		Total:         q.Total,
		ValidUntil:    q.ValidUntil,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// FromDomainQuoteList конвертирует список domain моделей в DTO
func FromDomainQuoteList(quotes []*domain.Quote) *QuoteListResponse {
	resp := &QuoteListResponse{
		Quotes: make([]QuoteResponse, 0, len(quotes)),
	}

	for _, quote := range quotes {
		if quoteResp := FromDomainQuote(quote); quoteResp != nil {
			resp.Quotes = append(resp.Quotes, *quoteResp)
		}
	}

	return resp
}
