package sync_statuses

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// EventRepository интерфейс хранилища событий
type EventRepository interface {
	// GetByID внутри транзакции должен блокировать строку события,
	// сериализуя конкурентные запуски синхронизации по одному eventID
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus, colorCode string) error
}

// QuoteRepository интерфейс хранилища предложений
type QuoteRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]*domain.Quote, error)
	UpdateStatusBatch(ctx context.Context, ids []int64, status domain.QuoteStatus) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
