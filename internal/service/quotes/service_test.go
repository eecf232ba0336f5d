package quotes

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
	"github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	"github.com/kmalt/EMS-EventService/internal/infra/storage/quote"
	"github.com/kmalt/EMS-EventService/internal/service/quotes/models"
)

type fakeQuoteRepo struct {
	quotes        []*domain.Quote
	nextID        int64
	yearCount     int
	updatedStatus map[int64]domain.QuoteStatus
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{nextID: 1, updatedStatus: make(map[int64]domain.QuoteStatus)}
}

func (r *fakeQuoteRepo) Create(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	created := *q
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.yearCount++
	r.quotes = append(r.quotes, &created)
	return &created, nil
}

func (r *fakeQuoteRepo) GetByTrackingToken(_ context.Context, token string) (*domain.Quote, error) {
	for _, q := range r.quotes {
		if q.TrackingToken == token {
			return q, nil
		}
	}
	return nil, quote.ErrQuoteNotFound
}

func (r *fakeQuoteRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.Quote, error) {
	out := make([]*domain.Quote, 0)
	for _, q := range r.quotes {
		if q.EventID != nil && *q.EventID == eventID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) UpdateStatus(_ context.Context, id int64, status domain.QuoteStatus) error {
	for _, q := range r.quotes {
		if q.ID == id {
			q.Status = status
			r.updatedStatus[id] = status
			return nil
		}
	}
	return quote.ErrQuoteNotFound
}

func (r *fakeQuoteRepo) UpdateStatusBatch(_ context.Context, ids []int64, status domain.QuoteStatus) (int, error) {
	n := 0
	for _, id := range ids {
		if err := r.UpdateStatus(context.Background(), id, status); err == nil {
			n++
		}
	}
	return n, nil
}

func (r *fakeQuoteRepo) ListExpired(_ context.Context, now time.Time) ([]*domain.Quote, error) {
	out := make([]*domain.Quote, 0)
	for _, q := range r.quotes {
		if q.IsExpiredByTime(now) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) CountCreatedInYear(_ context.Context, _ int) (int, error) {
	return r.yearCount, nil
}

type fakeEventRepo struct {
	events map[int64]*domain.Event
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	if e, ok := r.events[id]; ok {
		return e, nil
	}
	return nil, event.ErrEventNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(quotes *fakeQuoteRepo, events *fakeEventRepo) *Service {
	return NewService(quotes, events, fakeTxManager{}, 30, noopLogger{})
}

func activeEvent(id int64) *domain.Event {
	return &domain.Event{ID: id, Status: domain.EventStatusReserved}
}

func TestQuotesCreate(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		eventRepo := &fakeEventRepo{events: map[int64]*domain.Event{1: activeEvent(1)}}
		svc := newTestService(quoteRepo, eventRepo)

		resp, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: 1500})
		require.NoError(t, err)

		assert.Equal(t, string(domain.QuoteStatusDraft), resp.Status)
		assert.Equal(t, 1500.0, resp.Total)
		assert.NotEmpty(t, resp.TrackingToken)
		assert.Equal(t, fmt.Sprintf("Q-%d-0001", time.Now().Year()), resp.QuoteNumber)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), resp.ValidUntil, time.Minute)
	})

	t.Run("нумерация в пределах года последовательна", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		eventRepo := &fakeEventRepo{events: map[int64]*domain.Event{1: activeEvent(1)}}
		svc := newTestService(quoteRepo, eventRepo)

		first, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: 100})
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: 200})
		require.NoError(t, err)

		year := time.Now().Year()
		assert.Equal(t, fmt.Sprintf("Q-%d-0001", year), first.QuoteNumber)
		assert.Equal(t, fmt.Sprintf("Q-%d-0002", year), second.QuoteNumber)
		assert.NotEqual(t, first.TrackingToken, second.TrackingToken)
	})

	t.Run("событие не найдено", func(t *testing.T) {
		svc := newTestService(newFakeQuoteRepo(), &fakeEventRepo{events: map[int64]*domain.Event{}})

		_, err := svc.Create(context.Background(), 42, &models.CreateQuoteRequest{Total: 100})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("отменённое событие не котируется", func(t *testing.T) {
		cancelled := &domain.Event{ID: 1, Status: domain.EventStatusCancelled}
		svc := newTestService(newFakeQuoteRepo(), &fakeEventRepo{events: map[int64]*domain.Event{1: cancelled}})

		_, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: 100})
		assert.ErrorIs(t, err, ErrEventNotActive)
	})

	t.Run("отрицательная сумма", func(t *testing.T) {
		svc := newTestService(newFakeQuoteRepo(), &fakeEventRepo{events: map[int64]*domain.Event{1: activeEvent(1)}})

		_, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("некорректный срок действия", func(t *testing.T) {
		svc := newTestService(newFakeQuoteRepo(), &fakeEventRepo{events: map[int64]*domain.Event{1: activeEvent(1)}})

		days := 0
		_, err := svc.Create(context.Background(), 1, &models.CreateQuoteRequest{Total: 100, ValidityDays: &days})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestQuotesTrackView(t *testing.T) {
	eventID := int64(1)
	setup := func(status domain.QuoteStatus) (*Service, *fakeQuoteRepo) {
		quoteRepo := newFakeQuoteRepo()
		quoteRepo.quotes = append(quoteRepo.quotes, &domain.Quote{
			ID:            7,
			EventID:       &eventID,
			TrackingToken: "token-7",
			Status:        status,
		})
		return newTestService(quoteRepo, &fakeEventRepo{}), quoteRepo
	}

	t.Run("первый просмотр переводит SENT в VIEWED", func(t *testing.T) {
		svc, quoteRepo := setup(domain.QuoteStatusSent)

		resp, err := svc.TrackView(context.Background(), "token-7")
		require.NoError(t, err)
		assert.Equal(t, string(domain.QuoteStatusViewed), resp.Status)
		assert.Equal(t, domain.QuoteStatusViewed, quoteRepo.updatedStatus[7])
	})

	t.Run("повторный просмотр идемпотентен", func(t *testing.T) {
		svc, quoteRepo := setup(domain.QuoteStatusViewed)

		resp, err := svc.TrackView(context.Background(), "token-7")
		require.NoError(t, err)
		assert.Equal(t, string(domain.QuoteStatusViewed), resp.Status)
		assert.Empty(t, quoteRepo.updatedStatus, "статус повторно не записывается")
	})

	t.Run("терминальный статус не меняется", func(t *testing.T) {
		svc, quoteRepo := setup(domain.QuoteStatusAccepted)

		resp, err := svc.TrackView(context.Background(), "token-7")
		require.NoError(t, err)
		assert.Equal(t, string(domain.QuoteStatusAccepted), resp.Status)
		assert.Empty(t, quoteRepo.updatedStatus)
	})

	t.Run("неизвестный токен", func(t *testing.T) {
		svc, _ := setup(domain.QuoteStatusSent)

		_, err := svc.TrackView(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, ErrQuoteNotFound)
	})
}

func TestQuotesExpireDue(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	eventID := int64(1)

	quoteRepo := newFakeQuoteRepo()
	quoteRepo.quotes = []*domain.Quote{
		{ID: 1, EventID: &eventID, Status: domain.QuoteStatusSent, ValidUntil: now.Add(-time.Hour)},
		{ID: 2, EventID: &eventID, Status: domain.QuoteStatusDraft, ValidUntil: now.Add(-24 * time.Hour)},
		{ID: 3, EventID: &eventID, Status: domain.QuoteStatusSent, ValidUntil: now.Add(time.Hour)},
		{ID: 4, EventID: &eventID, Status: domain.QuoteStatusAccepted, ValidUntil: now.Add(-time.Hour)},
	}
	svc := newTestService(quoteRepo, &fakeEventRepo{})

	expired, err := svc.ExpireDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, expired)

	assert.Equal(t, domain.QuoteStatusExpired, quoteRepo.quotes[0].Status)
	assert.Equal(t, domain.QuoteStatusExpired, quoteRepo.quotes[1].Status)
	assert.Equal(t, domain.QuoteStatusSent, quoteRepo.quotes[2].Status, "срок ещё не истёк")
	assert.Equal(t, domain.QuoteStatusAccepted, quoteRepo.quotes[3].Status, "терминальный статус не экспайрится")

	t.Run("повторный запуск ничего не находит", func(t *testing.T) {
		expired, err := svc.ExpireDue(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, expired)
	})
}

func TestQuotesListByEvent(t *testing.T) {
	eventID := int64(1)
	otherID := int64(2)

	quoteRepo := newFakeQuoteRepo()
	quoteRepo.quotes = []*domain.Quote{
		{ID: 1, EventID: &eventID, QuoteNumber: "Q-2026-0001", Status: domain.QuoteStatusSent},
		{ID: 2, EventID: &otherID, QuoteNumber: "Q-2026-0002", Status: domain.QuoteStatusDraft},
		{ID: 3, EventID: &eventID, QuoteNumber: "Q-2026-0003", Status: domain.QuoteStatusDraft},
	}
	eventRepo := &fakeEventRepo{events: map[int64]*domain.Event{1: activeEvent(1)}}
	svc := newTestService(quoteRepo, eventRepo)

	resp, err := svc.ListByEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Quotes, 2)
	assert.Equal(t, "Q-2026-0001", resp.Quotes[0].QuoteNumber)
	assert.Equal(t, "Q-2026-0003", resp.Quotes[1].QuoteNumber)

	t.Run("событие не найдено", func(t *testing.T) {
		_, err := svc.ListByEvent(context.Background(), 99)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
