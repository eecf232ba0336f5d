package quotes

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда предложение не найдено
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrEventNotActive возвращается при попытке выставить предложение на отменённое событие
	ErrEventNotActive = errors.New("event is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.quotes: internal error")
)
