package resource

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = errors.New("resource.repository: room not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("resource.repository: venue not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")

	// ErrUnknownKind возвращается при неизвестном типе ресурса
	ErrUnknownKind = errors.New("resource.repository: unknown resource kind")
)
