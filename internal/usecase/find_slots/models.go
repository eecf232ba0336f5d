package find_slots

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// Request модель запроса поиска свободных слотов
type Request struct {
	RoomID          *int64    // ID зала (взаимоисключим с VenueID)
	VenueID         *int64    // ID площадки
	Date            time.Time // Дата поиска (время игнорируется)
	DurationMinutes int       // Желаемая длительность слота
}

// Slot свободный временной слот
type Slot struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []Slot            // Свободные слоты по возрастанию времени начала
	ExistingEvents  []*domain.Booking // Активные бронирования дня (для отображения)
	BusinessHours   domain.BusinessHours
}
