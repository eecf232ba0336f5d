package calendar

import "errors"

var (
	// ErrResourceNotFound возвращается, когда зал или площадка не найдены
	ErrResourceNotFound = errors.New("resource not found")

	// ErrUnknownKind возвращается при неизвестном типе ресурса
	ErrUnknownKind = errors.New("unknown resource kind")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.calendar: internal error")
)
