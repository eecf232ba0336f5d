package update_quote_status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
	quoteStorage "github.com/kmalt/EMS-EventService/internal/infra/storage/quote"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

type fakeQuoteRepo struct {
	quote         *domain.Quote
	updatedStatus *domain.QuoteStatus
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id int64) (*domain.Quote, error) {
	if r.quote == nil || r.quote.ID != id {
		return nil, quoteStorage.ErrQuoteNotFound
	}
	copied := *r.quote
	return &copied, nil
}

func (r *fakeQuoteRepo) UpdateStatus(_ context.Context, _ int64, status domain.QuoteStatus) error {
	r.updatedStatus = &status
	return nil
}

type fakeSyncEngine struct {
	req  *syncStatuses.Request
	resp *syncStatuses.Response
	err  error
}

func (e *fakeSyncEngine) Execute(_ context.Context, req *syncStatuses.Request) (*syncStatuses.Response, error) {
	e.req = req
	return e.resp, e.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func linkedQuote(status domain.QuoteStatus) *domain.Quote {
	eventID := int64(5)
	return &domain.Quote{ID: 7, EventID: &eventID, QuoteNumber: "Q-2026-0001", Status: status}
}

func TestUpdateQuoteStatus(t *testing.T) {
	t.Run("переход с каскадной синхронизацией события", func(t *testing.T) {
		repo := &fakeQuoteRepo{quote: linkedQuote(domain.QuoteStatusViewed)}
		engine := &fakeSyncEngine{resp: &syncStatuses.Response{
			Event:        &domain.Event{ID: 5, Status: domain.EventStatusConfirmed},
			EventUpdated: true,
		}}
		uc := NewUseCase(repo, engine, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusAccepted})
		require.NoError(t, err)

		assert.Equal(t, domain.QuoteStatusAccepted, resp.Quote.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.QuoteStatusAccepted, *repo.updatedStatus)

		require.NotNil(t, engine.req)
		assert.Equal(t, int64(5), engine.req.EventID)
		assert.Equal(t, syncStatuses.DirectionQuoteToEvent, engine.req.Direction)
		require.NotNil(t, engine.req.QuoteStatus)
		assert.Equal(t, domain.QuoteStatusAccepted, *engine.req.QuoteStatus)

		require.NotNil(t, resp.Sync)
		assert.True(t, resp.Sync.EventUpdated)
	})

	t.Run("переход в тот же статус идемпотентен", func(t *testing.T) {
		repo := &fakeQuoteRepo{quote: linkedQuote(domain.QuoteStatusSent)}
		engine := &fakeSyncEngine{}
		uc := NewUseCase(repo, engine, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusSent})
		require.NoError(t, err)

		assert.Equal(t, domain.QuoteStatusSent, resp.Quote.Status)
		assert.Nil(t, repo.updatedStatus, "статус повторно не записывается")
		assert.Nil(t, engine.req, "синхронизация не запускается")
	})

	t.Run("предложение без события не синхронизируется", func(t *testing.T) {
		repo := &fakeQuoteRepo{quote: &domain.Quote{ID: 7, Status: domain.QuoteStatusDraft}}
		engine := &fakeSyncEngine{}
		uc := NewUseCase(repo, engine, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusSent})
		require.NoError(t, err)

		assert.Equal(t, domain.QuoteStatusSent, resp.Quote.Status)
		assert.Nil(t, engine.req)
		assert.Nil(t, resp.Sync)
	})

	t.Run("неизвестный статус", func(t *testing.T) {
		uc := NewUseCase(&fakeQuoteRepo{}, &fakeSyncEngine{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatus("PENDING")})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("предложение не найдено", func(t *testing.T) {
		uc := NewUseCase(&fakeQuoteRepo{}, &fakeSyncEngine{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusSent})
		assert.ErrorIs(t, err, ErrQuoteNotFound)
	})

	t.Run("недопустимый переход", func(t *testing.T) {
		repo := &fakeQuoteRepo{quote: linkedQuote(domain.QuoteStatusAccepted)}
		uc := NewUseCase(repo, &fakeSyncEngine{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusRejected})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("сбой синхронизации возвращается с частичным результатом", func(t *testing.T) {
		repo := &fakeQuoteRepo{quote: linkedQuote(domain.QuoteStatusSent)}
		engine := &fakeSyncEngine{err: syncStatuses.ErrConcurrentModification}
		uc := NewUseCase(repo, engine, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{QuoteID: 7, Status: domain.QuoteStatusViewed})
		require.ErrorIs(t, err, syncStatuses.ErrConcurrentModification)

		// Статус предложения уже применён
		require.NotNil(t, resp)
		assert.Equal(t, domain.QuoteStatusViewed, resp.Quote.Status)
	})
}
