package cancel_event

import (
	"context"

	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

type SyncStatusesUseCase interface {
	Execute(ctx context.Context, req *syncStatuses.Request) (*syncStatuses.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
