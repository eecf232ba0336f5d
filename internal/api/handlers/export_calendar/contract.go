package export_calendar

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

type CalendarService interface {
	BuildFeed(ctx context.Context, kind domain.ResourceKind, resourceID int64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
