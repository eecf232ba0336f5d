package events

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// EventRepository интерфейс хранилища событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	ListByResource(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id int64, event *domain.Event) (*domain.Event, error)
}

// ResourceRepository интерфейс хранилища залов и площадок
type ResourceRepository interface {
	GetLocation(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Location, error)
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
