package update_quote_status

import (
	"context"

	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

// QuoteRepository интерфейс хранилища предложений
type QuoteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error
}

// SyncEngine интерфейс движка синхронизации статусов
type SyncEngine interface {
	Execute(ctx context.Context, req *syncStatuses.Request) (*syncStatuses.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
