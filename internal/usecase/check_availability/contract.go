package check_availability

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований ресурса
type BookingRepository interface {
	// ListByResource возвращает все бронирования ресурса за период,
	// включая отменённые: их исключает сама проверка доступности
	ListByResource(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
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
