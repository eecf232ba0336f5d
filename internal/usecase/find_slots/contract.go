package find_slots

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований ресурса
type BookingRepository interface {
	ListByResource(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
