package create_quote

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/service/quotes/models"
)

type QuoteService interface {
	Create(ctx context.Context, eventID int64, req *models.CreateQuoteRequest) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
