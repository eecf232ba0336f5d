package quote_expiry

import (
	"context"
	"time"
)

// QuoteExpirer интерфейс сервиса, выполняющего экспирацию предложений
type QuoteExpirer interface {
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// MetricsCollector интерфейс бизнес-метрик задачи
type MetricsCollector interface {
	AddQuotesExpired(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
