package check_availability

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном временном интервале
	ErrInvalidPeriod = errors.New("invalid availability period")

	// ErrMissingResource возвращается, когда не указан ни зал, ни площадка
	ErrMissingResource = errors.New("either roomId or venueId must be specified")

	// ErrAmbiguousResource возвращается, когда указаны оба ресурса сразу
	ErrAmbiguousResource = errors.New("roomId and venueId are mutually exclusive")

	// ErrResourceNotFound возвращается, когда зал или площадка не найдены
	ErrResourceNotFound = errors.New("room or venue not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
