package quote_expiry

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// Job фоновая задача принудительной экспирации просроченных предложений
// Расписание задаётся cron-выражением из конфигурации
type Job struct {
	expirer QuoteExpirer
	metrics MetricsCollector // nil, если метрики выключены
	cron    *cron.Cron
	logger  Logger
}

// New создает задачу экспирации предложений
func New(expirer QuoteExpirer, metrics MetricsCollector, logger Logger) *Job {
	return &Job{
		expirer: expirer,
		metrics: metrics,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start регистрирует задачу по расписанию и запускает планировщик
func (j *Job) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return fmt.Errorf("quote_expiry: invalid cron schedule %q: %w", schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Quote expiry job scheduled: %q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Quote expiry job stopped")
}

// run один проход экспирации
func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	expired, err := j.expirer.ExpireDue(ctx, time.Now())
	if err != nil {
		j.logger.Error("Quote expiry run failed: %v", err)
		return
	}

	if expired > 0 {
		j.logger.Info("Quote expiry run: %d quote(s) expired", expired)
		if j.metrics != nil {
			j.metrics.AddQuotesExpired(expired)
		}
	}
}
