package calendar

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// EventRepository интерфейс хранилища событий
type EventRepository interface {
	ListWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error)
}

// ResourceRepository интерфейс хранилища залов и площадок
type ResourceRepository interface {
	GetLocation(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
