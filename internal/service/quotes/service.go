package quotes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmalt/EMS-EventService/internal/domain"
	eventRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	quoteRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/quote"
	"github.com/kmalt/EMS-EventService/internal/service/quotes/models"
)

// Service сервис для работы с коммерческими предложениями
type Service struct {
	quoteRepo           QuoteRepository
	eventRepo           EventRepository
	txManager           TxManager
	defaultValidityDays int
	logger              Logger
}

// NewService создает новый экземпляр сервиса предложений
func NewService(
	quoteRepo QuoteRepository,
	eventRepo EventRepository,
	txManager TxManager,
	defaultValidityDays int,
	logger Logger,
) *Service {
	if defaultValidityDays <= 0 {
		defaultValidityDays = domain.DefaultQuoteValidityDays
	}
	return &Service{
		quoteRepo:           quoteRepo,
		eventRepo:           eventRepo,
		txManager:           txManager,
		defaultValidityDays: defaultValidityDays,
		logger:              logger,
	}
}

// Create создаёт предложение в статусе DRAFT для активного события
// Номер предложения Q-ГГГГ-NNNN выдаётся по порядку создания в пределах года
func (s *Service) Create(ctx context.Context, eventID int64, req *models.CreateQuoteRequest) (*models.QuoteResponse, error) {
	s.logger.Info("Create: creating quote for event id=%d, total=%.2f", eventID, req.Total)

	if req.Total < 0 {
		return nil, fmt.Errorf("%w: total cannot be negative", ErrInvalidInput)
	}

	validityDays := s.defaultValidityDays
	if req.ValidityDays != nil {
		if *req.ValidityDays <= 0 {
			return nil, fmt.Errorf("%w: validityDays must be positive", ErrInvalidInput)
		}
		validityDays = *req.ValidityDays
	}

	var created *domain.Quote
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}

		if !event.IsActive() {
			return fmt.Errorf("%w: event %d has status %s", ErrEventNotActive, eventID, event.Status)
		}

		now := time.Now()
		seq, err := s.quoteRepo.CountCreatedInYear(ctx, now.Year())
		if err != nil {
			return fmt.Errorf("count quotes: %w", err)
		}

		quote := &domain.Quote{
			EventID:       &eventID,
			QuoteNumber:   fmt.Sprintf("Q-%d-%04d", now.Year(), seq+1),
			TrackingToken: uuid.NewString(),
			Status:        domain.QuoteStatusDraft,
			Total:         req.Total,
			ValidUntil:    now.AddDate(0, 0, validityDays),
		}

		created, err = s.quoteRepo.Create(ctx, quote)
		if err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrEventNotActive):
			s.logger.Warn("Create: %v", err)
			return nil, err
		default:
			s.logger.Error("Create: transaction failed for event id=%d: %v", eventID, err)
			return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: successfully created quote id=%d number=%s", created.ID, created.QuoteNumber)
	return models.FromDomainQuote(created), nil
}

// ListByEvent получает все предложения события в порядке создания
func (s *Service) ListByEvent(ctx context.Context, eventID int64) (*models.QuoteListResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("ListByEvent: event id=%d not found", eventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("ListByEvent: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - repository error: %v", ErrInternal, err)
	}

	quotes, err := s.quoteRepo.ListByEventID(ctx, eventID)
	if err != nil {
		s.logger.Error("ListByEvent: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuoteList(quotes), nil
}

// TrackView регистрирует просмотр предложения клиентом по публичному токену
// Первый просмотр переводит SENT -> VIEWED, повторные просмотры идемпотентны
func (s *Service) TrackView(ctx context.Context, token string) (*models.QuoteResponse, error) {
	quote, err := s.quoteRepo.GetByTrackingToken(ctx, token)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("TrackView: unknown tracking token")
			return nil, ErrQuoteNotFound
		}
		s.logger.Error("TrackView: repository error: %v", err)
		return nil, fmt.Errorf("%w: TrackView - repository error: %v", ErrInternal, err)
	}

	if quote.Status == domain.QuoteStatusSent {
		if err := s.quoteRepo.UpdateStatus(ctx, quote.ID, domain.QuoteStatusViewed); err != nil {
			s.logger.Error("TrackView: failed to mark quote %d viewed: %v", quote.ID, err)
			return nil, fmt.Errorf("%w: TrackView - update status: %v", ErrInternal, err)
		}
		quote.Status = domain.QuoteStatusViewed
		s.logger.Info("TrackView: quote %d marked as viewed", quote.ID)
	}

	return models.FromDomainQuote(quote), nil
}

// ExpireDue переводит предложения с истёкшим сроком действия в EXPIRED
// Возвращает количество обработанных предложений
func (s *Service) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	var expired int
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		quotes, err := s.quoteRepo.ListExpired(ctx, now)
		if err != nil {
			return fmt.Errorf("list expired: %w", err)
		}
		if len(quotes) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(quotes))
		for _, quote := range quotes {
			ids = append(ids, quote.ID)
		}

		expired, err = s.quoteRepo.UpdateStatusBatch(ctx, ids, domain.QuoteStatusExpired)
		if err != nil {
			return fmt.Errorf("expire batch: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ExpireDue: transaction failed: %v", err)
		return 0, fmt.Errorf("%w: ExpireDue - transaction failed: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireDue: expired %d overdue quote(s)", expired)
	}
	return expired, nil
}
