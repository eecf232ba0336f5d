package sync_statuses

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidDirection возвращается при неизвестном направлении синхронизации
	ErrInvalidDirection = errors.New("invalid sync direction")

	// ErrNothingRequested возвращается, когда направление требует статус,
	// а он не передан
	ErrNothingRequested = errors.New("requested status is required for this direction")

	// ErrConcurrentModification возвращается при конфликте сериализуемых
	// транзакций; вызывающий может безопасно повторить запрос
	ErrConcurrentModification = errors.New("concurrent modification, retry the request")

	// ErrPartialSync возвращается, когда событие обновлено, но не все
	// предложения: результат содержит фактически применённые изменения
	ErrPartialSync = errors.New("partial synchronization failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
