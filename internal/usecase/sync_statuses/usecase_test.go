package sync_statuses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
	eventStorage "github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	"github.com/kmalt/EMS-EventService/pkg/txmanager"
)

type fakeEventRepo struct {
	event          *domain.Event
	getErr         error
	updateErr      error
	updatedStatus  *domain.EventStatus
	updatedColor   string
	updateStatusID int64
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.event == nil || r.event.ID != id {
		return nil, eventStorage.ErrEventNotFound
	}
	return r.event, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, id int64, status domain.EventStatus, colorCode string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updateStatusID = id
	r.updatedStatus = &status
	r.updatedColor = colorCode
	return nil
}

type fakeQuoteRepo struct {
	quotes   []*domain.Quote
	listErr  error
	batchErr error
	batches  []quoteBatch
}

func (r *fakeQuoteRepo) ListByEventID(_ context.Context, _ int64) ([]*domain.Quote, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.quotes, nil
}

func (r *fakeQuoteRepo) UpdateStatusBatch(_ context.Context, ids []int64, status domain.QuoteStatus) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	r.batches = append(r.batches, quoteBatch{ids: ids, target: status})
	return len(ids), nil
}

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(events *fakeEventRepo, quotes *fakeQuoteRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(events, quotes, tx, noopLogger{})
}

func TestSyncExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeEventRepo{}, &fakeQuoteRepo{}, &fakeTxManager{})

	t.Run("неизвестное направление", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{EventID: 1, Direction: Direction("sideways")})
		assert.ErrorIs(t, err, ErrInvalidDirection)
	})

	t.Run("event-to-quotes без статуса события", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{EventID: 1, Direction: DirectionEventToQuotes})
		assert.ErrorIs(t, err, ErrNothingRequested)
	})

	t.Run("quote-to-event без статуса предложения", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{EventID: 1, Direction: DirectionQuoteToEvent})
		assert.ErrorIs(t, err, ErrNothingRequested)
	})
}

func TestSyncExecuteEventNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeEventRepo{}, &fakeQuoteRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{EventID: 42, Direction: DirectionBoth})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSyncExecuteCancellationCascade(t *testing.T) {
	events := &fakeEventRepo{event: planEvent(domain.EventStatusQuoted)}
	quotes := &fakeQuoteRepo{quotes: []*domain.Quote{
		planQuote(10, domain.QuoteStatusSent),
		planQuote(11, domain.QuoteStatusAccepted),
	}}
	uc := newTestUseCase(events, quotes, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusCancelled),
		Direction:   DirectionEventToQuotes,
	})
	require.NoError(t, err)

	assert.True(t, resp.EventUpdated)
	assert.Equal(t, domain.EventStatusCancelled, resp.Event.Status)
	assert.Equal(t, "#ef4444", resp.Event.ColorCode)
	require.NotNil(t, events.updatedStatus)
	assert.Equal(t, domain.EventStatusCancelled, *events.updatedStatus)

	// Экспайрится только отправленное; принятое сохраняется
	assert.Equal(t, 1, resp.QuotesUpdated)
	require.Len(t, quotes.batches, 1)
	assert.Equal(t, []int64{10}, quotes.batches[0].ids)
	assert.Equal(t, domain.QuoteStatusExpired, quotes.batches[0].target)

	// Загруженный срез отражает применённый пакет
	assert.Equal(t, domain.QuoteStatusExpired, resp.Quotes[0].Status)
	assert.Equal(t, domain.QuoteStatusAccepted, resp.Quotes[1].Status)
}

func TestSyncExecuteIdempotentRun(t *testing.T) {
	events := &fakeEventRepo{event: planEvent(domain.EventStatusConfirmed)}
	quotes := &fakeQuoteRepo{quotes: []*domain.Quote{planQuote(10, domain.QuoteStatusAccepted)}}
	uc := newTestUseCase(events, quotes, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{EventID: 1, Direction: DirectionBoth})
	require.NoError(t, err)

	assert.False(t, resp.EventUpdated)
	assert.Zero(t, resp.QuotesUpdated)
	assert.Empty(t, resp.Changes)
	assert.Nil(t, events.updatedStatus)
	assert.Empty(t, quotes.batches)
}

func TestSyncExecutePartialFailure(t *testing.T) {
	events := &fakeEventRepo{event: planEvent(domain.EventStatusQuoted)}
	quotes := &fakeQuoteRepo{
		quotes:   []*domain.Quote{planQuote(10, domain.QuoteStatusSent)},
		batchErr: errors.New("deadlock detected"),
	}
	uc := newTestUseCase(events, quotes, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventID:     1,
		EventStatus: eventStatusPtr(domain.EventStatusCancelled),
		Direction:   DirectionEventToQuotes,
	})

	require.ErrorIs(t, err, ErrPartialSync)
	// Частичный результат: событие обновлено, предложения нет
	require.NotNil(t, resp)
	assert.True(t, resp.EventUpdated)
	assert.Zero(t, resp.QuotesUpdated)
}

func TestSyncExecuteSerializationConflict(t *testing.T) {
	uc := newTestUseCase(
		&fakeEventRepo{event: planEvent(domain.EventStatusQuoted)},
		&fakeQuoteRepo{},
		&fakeTxManager{err: txmanager.ErrSerializationFailure},
	)

	_, err := uc.Execute(context.Background(), &Request{EventID: 1, Direction: DirectionBoth})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestSyncGetReport(t *testing.T) {
	events := &fakeEventRepo{event: planEvent(domain.EventStatusQuoted)}
	quotes := &fakeQuoteRepo{quotes: []*domain.Quote{
		planQuote(10, domain.QuoteStatusSent),
		planQuote(11, domain.QuoteStatusRejected),
	}}
	uc := newTestUseCase(events, quotes, &fakeTxManager{})

	report, err := uc.GetReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusQuoted, report.EventStatus)
	assert.Equal(t, 2, report.QuotesCount)
	assert.Equal(t, 1, report.QuotesByStatus[domain.QuoteStatusSent])
	assert.Equal(t, 1, report.QuotesByStatus[domain.QuoteStatusRejected])
	assert.False(t, report.NeedsSync)

	t.Run("событие не найдено", func(t *testing.T) {
		_, err := uc.GetReport(context.Background(), 99)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
