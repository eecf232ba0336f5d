package get_sync_report

import (
	"context"

	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

type SyncReportUseCase interface {
	GetReport(ctx context.Context, eventID int64) (*syncStatuses.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
