package update_quote_status

import (
	"context"

	updateQuoteStatus "github.com/kmalt/EMS-EventService/internal/usecase/update_quote_status"
)

type UpdateQuoteStatusUseCase interface {
	Execute(ctx context.Context, req *updateQuoteStatus.Request) (*updateQuoteStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
