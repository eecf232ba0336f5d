package update_quote_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
	quoteStorage "github.com/kmalt/EMS-EventService/internal/infra/storage/quote"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
	"github.com/kmalt/EMS-EventService/pkg/ptr"
)

// UseCase сценарий смены статуса предложения с каскадной синхронизацией события
type UseCase struct {
	quoteRepo QuoteRepository
	sync      SyncEngine
	logger    Logger
}

func NewUseCase(quoteRepo QuoteRepository, sync SyncEngine, logger Logger) *UseCase {
	return &UseCase{
		quoteRepo: quoteRepo,
		sync:      sync,
		logger:    logger,
	}
}

// Execute переводит предложение в новый статус и запускает синхронизацию quote→event
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация целевого статуса
	if _, ok := domain.ValidQuoteStatus(string(req.Status)); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// 2. Получение предложения
	quote, err := u.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, quoteStorage.ErrQuoteNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrQuoteNotFound, req.QuoteID)
		}
		u.logger.Error("UpdateQuoteStatus: failed to get quote %d: %v", req.QuoteID, err)
		return nil, fmt.Errorf("%w: Execute - u.quoteRepo.GetByID: %v", ErrInternal, err)
	}

	// 3. Проверка допустимости перехода
	if err := domain.ValidateQuoteTransition(quote.Status, req.Status); err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, quote.Status, req.Status)
	}

	// Переход в тот же статус — идемпотентный no-op
	if quote.Status == req.Status {
		return &Response{Quote: quote}, nil
	}

	// 4. Применение нового статуса
	if err := u.quoteRepo.UpdateStatus(ctx, quote.ID, req.Status); err != nil {
		u.logger.Error("UpdateQuoteStatus: failed to update quote %d: %v", quote.ID, err)
		return nil, fmt.Errorf("%w: Execute - u.quoteRepo.UpdateStatus: %v", ErrInternal, err)
	}
	quote.Status = req.Status
	u.logger.Info("Quote %d moved to status %s", quote.ID, req.Status)

	resp := &Response{Quote: quote}

	// 5. Каскадная синхронизация события, если предложение привязано
	if quote.EventID != nil {
		syncResp, err := u.sync.Execute(ctx, &syncStatuses.Request{
			EventID:     *quote.EventID,
			QuoteStatus: ptr.Ptr(req.Status),
			Direction:   syncStatuses.DirectionQuoteToEvent,
		})
		if err != nil {
			// Статус предложения уже применён, поэтому ошибку синхронизации
			// возвращаем вместе с частичным результатом
			u.logger.Warn("UpdateQuoteStatus: sync after quote %d failed: %v", quote.ID, err)
			resp.Sync = syncResp
			return resp, err
		}
		resp.Sync = syncResp
	}

	return resp, nil
}
