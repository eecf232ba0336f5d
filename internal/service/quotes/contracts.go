package quotes

import (
	"context"
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// QuoteRepository интерфейс хранилища предложений
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	GetByTrackingToken(ctx context.Context, token string) (*domain.Quote, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*domain.Quote, error)
	UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error
	UpdateStatusBatch(ctx context.Context, ids []int64, status domain.QuoteStatus) (int, error)
	ListExpired(ctx context.Context, now time.Time) ([]*domain.Quote, error)
	CountCreatedInYear(ctx context.Context, year int) (int, error)
}

// EventRepository интерфейс хранилища событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
