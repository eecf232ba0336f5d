package events

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrResourceNotFound возвращается, когда зал или площадка не найдены
	ErrResourceNotFound = errors.New("resource not found")

	// ErrTimeConflict возвращается, когда период пересекается с существующим бронированием
	ErrTimeConflict = errors.New("time conflict with existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification возвращается при конфликте сериализуемых транзакций
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.events: internal error")
)
