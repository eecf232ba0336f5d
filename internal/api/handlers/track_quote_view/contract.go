package track_quote_view

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/service/quotes/models"
)

type QuoteService interface {
	TrackView(ctx context.Context, token string) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
