package update_quote_status

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда предложение не найдено
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidStatus возвращается при неизвестном статусе предложения
	ErrInvalidStatus = errors.New("invalid quote status")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("illegal quote status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
