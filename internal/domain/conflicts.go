package domain

// FindConflicts возвращает бронирования, конфликтующие с предложенным интервалом
// Единственная точка реализации предиката конфликта: её используют и проверка
// доступности, и поиск слотов, и создание/редактирование событий
//
// Правила:
//   - отменённые бронирования (CANCELLED) конфликтами не считаются
//   - бронирование с ID excludeEventID пропускается (проверка события против
//     самого себя при редактировании)
//   - интервалы полуоткрытые: соприкасающиеся границы не конфликтуют
//
// Результат сохраняет порядок входного среза
func FindConflicts(proposed TimeInterval, bookings []*Booking, excludeEventID *int64) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, booking := range bookings {
		if booking.Status == EventStatusCancelled {
			continue
		}
		if excludeEventID != nil && booking.ID == *excludeEventID {
			continue
		}
		if proposed.Overlaps(booking.Interval) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}

// HasConflict возвращает true, если предложенный интервал конфликтует
// хотя бы с одним бронированием
func HasConflict(proposed TimeInterval, bookings []*Booking, excludeEventID *int64) bool {
	for _, booking := range bookings {
		if booking.Status == EventStatusCancelled {
			continue
		}
		if excludeEventID != nil && booking.ID == *excludeEventID {
			continue
		}
		if proposed.Overlaps(booking.Interval) {
			return true
		}
	}
	return false
}
