package check_availability

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// Request модель запроса проверки доступности
type Request struct {
	StartDate      time.Time // Начало предлагаемого интервала
	EndDate        time.Time // Конец предлагаемого интервала (исключается)
	RoomID         *int64    // ID зала (взаимоисключим с VenueID)
	VenueID        *int64    // ID площадки
	ExcludeEventID *int64    // ID события, игнорируемого при проверке (редактирование)
}

// Response модель ответа проверки доступности
type Response struct {
	Available       bool
	Conflicts       []*domain.Booking
	Location        *domain.Location
	RequestedPeriod domain.TimeInterval
}
