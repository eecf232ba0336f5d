package find_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMissingResource возвращается, когда не указан ни зал, ни площадка
	ErrMissingResource = errors.New("either roomId or venueId must be specified")

	// ErrAmbiguousResource возвращается, когда указаны оба ресурса сразу
	ErrAmbiguousResource = errors.New("roomId and venueId are mutually exclusive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
