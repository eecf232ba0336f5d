package sync_statuses

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
	eventRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	"github.com/kmalt/EMS-EventService/pkg/txmanager"
)

// UseCase движок синхронизации статусов события и его предложений
//
// Вся последовательность load-decide-apply выполняется в одной
// сериализуемой транзакции по одному eventID: блокировка строки события
// (SELECT ... FOR UPDATE в репозитории) сериализует конкурентные запуски,
// вызовы по разным событиям идут параллельно
type UseCase struct {
	eventRepo EventRepository
	quoteRepo QuoteRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	quoteRepo QuoteRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		quoteRepo: quoteRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет один проход синхронизации
//
// Идемпотентность: повторный вызов с теми же входными данными без внешних
// изменений состояния возвращает EventUpdated=false, QuotesUpdated=0 - каждое
// правило проверяет целевое состояние перед записью
//
// При ErrConcurrentModification вызывающий может повторить запрос; движок
// сам не ретраит, чтобы не умножать нагрузку скрытыми повторами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := ValidDirection(string(req.Direction)); !ok {
		uc.logger.Warn("SyncStatuses: invalid direction %q for event=%d", req.Direction, req.EventID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, req.Direction)
	}

	// Однонаправленный запуск без соответствующего статуса бессмыслен;
	// direction=both допускает пустой запрос - остаётся автосверка
	if req.Direction == DirectionEventToQuotes && req.EventStatus == nil {
		return nil, fmt.Errorf("%w: eventStatus", ErrNothingRequested)
	}
	if req.Direction == DirectionQuoteToEvent && req.QuoteStatus == nil {
		return nil, fmt.Errorf("%w: quoteStatus", ErrNothingRequested)
	}

	uc.logger.Info("SyncStatuses: event=%d direction=%s eventStatus=%v quoteStatus=%v",
		req.EventID, req.Direction, fmtStatus(req.EventStatus), fmtStatus(req.QuoteStatus))

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем событие с блокировкой строки
		event, err := uc.eventRepo.GetByID(txCtx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: failed to load event: %v", ErrInternal, err)
		}

		// 2. Загружаем предложения события
		quotes, err := uc.quoteRepo.ListByEventID(txCtx, req.EventID)
		if err != nil {
			return fmt.Errorf("%w: failed to load quotes: %v", ErrInternal, err)
		}

		// 3. Вычисляем план по таблице правил (чистая функция)
		p, err := buildPlan(event, quotes, req)
		if err != nil {
			return err
		}

		// 4. Применяем план; порядок фиксирован: сначала событие, затем
		// предложения - частичный сбой различим в результате
		resp = &Response{Event: event, Quotes: quotes, Changes: p.changes}

		if p.eventTarget != nil {
			color := domain.EventStatusColor(*p.eventTarget)
			if err := uc.eventRepo.UpdateStatus(txCtx, event.ID, *p.eventTarget, color); err != nil {
				return fmt.Errorf("%w: failed to update event status: %v", ErrInternal, err)
			}
			event.Status = *p.eventTarget
			event.ColorCode = color
			resp.EventUpdated = true
		}

		for _, batch := range p.batches {
			n, err := uc.quoteRepo.UpdateStatusBatch(txCtx, batch.ids, batch.target)
			resp.QuotesUpdated += n
			if err != nil {
				// Событие уже обновлено, пакет предложений - нет:
				// возвращаем частичный результат, решение о повторе
				// оставшихся обновлений за вызывающим
				if resp.EventUpdated || resp.QuotesUpdated > 0 {
					return fmt.Errorf("%w: %d quote(s) not updated to %s: %v",
						ErrPartialSync, len(batch.ids)-n, batch.target, err)
				}
				return fmt.Errorf("%w: failed to update quotes: %v", ErrInternal, err)
			}
			applyBatch(quotes, batch)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("SyncStatuses: serialization conflict for event=%d", req.EventID)
			return nil, fmt.Errorf("%w: event=%d", ErrConcurrentModification, req.EventID)
		}
		if errors.Is(err, ErrPartialSync) {
			uc.logger.Error("SyncStatuses: partial failure for event=%d: %v", req.EventID, err)
			return resp, err
		}
		return nil, err
	}

	uc.logger.Info("SyncStatuses: event=%d done: eventUpdated=%t quotesUpdated=%d changes=%d",
		req.EventID, resp.EventUpdated, resp.QuotesUpdated, len(resp.Changes))

	return resp, nil
}

// GetReport возвращает состояние синхронизации события без применения изменений
// Выполняется вне транзакции: блокировки строк не нужны
func (uc *UseCase) GetReport(ctx context.Context, eventID int64) (*Report, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: failed to load event: %v", ErrInternal, err)
	}

	quotes, err := uc.quoteRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load quotes: %v", ErrInternal, err)
	}

	return BuildReport(event, quotes), nil
}

// applyBatch отражает применённый пакет в загруженном срезе предложений
func applyBatch(quotes []*domain.Quote, batch quoteBatch) {
	ids := make(map[int64]struct{}, len(batch.ids))
	for _, id := range batch.ids {
		ids[id] = struct{}{}
	}
	for _, q := range quotes {
		if _, ok := ids[q.ID]; ok {
			q.Status = batch.target
		}
	}
}

func fmtStatus[T ~string](s *T) string {
	if s == nil {
		return "<none>"
	}
	return string(*s)
}
