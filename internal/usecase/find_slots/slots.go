package find_slots

import (
	"time"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// generateSlots перебирает кандидатов с фиксированным шагом от начала рабочего
// дня и оставляет только свободные
//
// Кандидат [start, start+duration) отбрасывается, если:
//   - его конец выходит за пределы рабочего дня
//   - он пересекается хотя бы с одним активным бронированием (предикат
//     пересечения общий с проверкой доступности: полуоткрытые интервалы,
//     соприкасающиеся границы не конфликтуют)
//
// Результат отсортирован по возрастанию времени начала; выбор между
// свободными слотами остаётся за вызывающим
func generateSlots(
	date time.Time,
	hours domain.BusinessHours,
	durationMinutes int,
	strideMinutes int,
	bookings []*domain.Booking,
) []Slot {
	slots := make([]Slot, 0)

	// Если длительность не помещается в рабочий день, кандидатов нет
	if durationMinutes > hours.SpanMinutes() {
		return slots
	}

	duration := time.Duration(durationMinutes) * time.Minute
	stride := time.Duration(strideMinutes) * time.Minute

	day, err := hours.On(date)
	if err != nil {
		return slots
	}

	for start := day.Start; !start.After(day.End.Add(-duration)); start = start.Add(stride) {
		candidate := domain.TimeInterval{Start: start, End: start.Add(duration)}

		if domain.HasConflict(candidate, bookings, nil) {
			continue
		}

		slots = append(slots, Slot{
			StartTime:       candidate.Start,
			EndTime:         candidate.End,
			DurationMinutes: durationMinutes,
		})
	}

	return slots
}

// activeBookings отфильтровывает отменённые бронирования для списка
// существующих событий дня в ответе
func activeBookings(bookings []*domain.Booking) []*domain.Booking {
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != domain.EventStatusCancelled {
			active = append(active, b)
		}
	}
	return active
}

// dayBounds возвращает границы суток для выборки бронирований дня
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
