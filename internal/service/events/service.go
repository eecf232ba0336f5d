package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
	eventRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	resourceRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/resource"
	"github.com/kmalt/EMS-EventService/internal/service/events/models"
	"github.com/kmalt/EMS-EventService/pkg/txmanager"
)

// Service сервис для работы с событиями календаря
type Service struct {
	eventRepo    EventRepository
	resourceRepo ResourceRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(
	eventRepo EventRepository,
	resourceRepo ResourceRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		eventRepo:    eventRepo,
		resourceRepo: resourceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создаёт событие в статусе RESERVED
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурирующих запроса не забронировали один ресурс
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: creating event %q for period %s - %s",
		req.Title, req.StartDate.Format(domain.DateTimeFormat), req.EndDate.Format(domain.DateTimeFormat))

	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	interval, err := domain.NewTimeInterval(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Create: invalid period for event %q: %v", req.Title, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	kind, resourceID, err := domain.ResolveResource(req.RoomID, req.VenueID)
	if err != nil {
		s.logger.Warn("Create: invalid resource reference for event %q: %v", req.Title, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Ресурс должен существовать до входа в транзакцию
	if _, err := s.resourceRepo.GetLocation(ctx, kind, resourceID); err != nil {
		if errors.Is(err, resourceRepo.ErrRoomNotFound) || errors.Is(err, resourceRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: %s %d not found", kind, resourceID)
			return nil, fmt.Errorf("%w: %s %d", ErrResourceNotFound, kind, resourceID)
		}
		s.logger.Error("Create: failed to resolve %s %d: %v", kind, resourceID, err)
		return nil, fmt.Errorf("%w: Create - resource lookup: %v", ErrInternal, err)
	}

	event := &domain.Event{
		Title:       req.Title,
		ClientID:    req.ClientID,
		Interval:    interval,
		RoomID:      req.RoomID,
		VenueID:     req.VenueID,
		IsFullVenue: req.IsFullVenue || kind == domain.ResourceKindVenue,
		Status:      domain.EventStatusReserved,
		ColorCode:   domain.EventStatusColor(domain.EventStatusReserved),
		Notes:       req.Notes,
	}

	var created *domain.Event
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		bookings, err := s.eventRepo.ListByResource(ctx, domain.BookingFilter{
			ResourceID:   resourceID,
			ResourceKind: kind,
			From:         &interval.Start,
			To:           &interval.End,
		})
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}

		if conflicts := domain.FindConflicts(interval, bookings, nil); len(conflicts) > 0 {
			return fmt.Errorf("%w: %d overlapping booking(s)", ErrTimeConflict, len(conflicts))
		}

		created, err = s.eventRepo.Create(ctx, event)
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.mapTxError("Create", err)
	}

	s.logger.Info("Create: successfully created event id=%d", created.ID)
	return models.FromDomainEvent(created), nil
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// List получает события календаря с фильтрацией по периоду, ресурсу и статусу
// CANCELLED события по умолчанию не возвращаются
func (s *Service) List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	events, err := s.eventRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d events", len(events))
	return models.FromDomainEventList(events), nil
}

// Update частично обновляет событие
// При смене периода или ресурса конфликты перепроверяются с исключением самого события
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Update: updating event id=%d", id)

	var updated *domain.Event
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}

		if req.Title != nil {
			if *req.Title == "" {
				return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
			}
			event.Title = *req.Title
		}
		if req.ClientID != nil {
			event.ClientID = req.ClientID
		}
		if req.Notes != nil {
			event.Notes = req.Notes
		}

		recheck := false

		if req.StartDate != nil || req.EndDate != nil {
			start := event.Interval.Start
			end := event.Interval.End
			if req.StartDate != nil {
				start = *req.StartDate
			}
			if req.EndDate != nil {
				end = *req.EndDate
			}
			interval, err := domain.NewTimeInterval(start, end)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			event.Interval = interval
			recheck = true
		}

		if req.RoomID != nil || req.VenueID != nil {
			event.RoomID = req.RoomID
			event.VenueID = req.VenueID
			recheck = true
		}

		kind, resourceID, err := domain.ResolveResource(event.RoomID, event.VenueID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		event.IsFullVenue = kind == domain.ResourceKindVenue

		if recheck {
			bookings, err := s.eventRepo.ListByResource(ctx, domain.BookingFilter{
				ResourceID:   resourceID,
				ResourceKind: kind,
				From:         &event.Interval.Start,
				To:           &event.Interval.End,
			})
			if err != nil {
				return fmt.Errorf("list bookings: %w", err)
			}

			// Само событие исключается из проверки, иначе оно конфликтует с собой
			if conflicts := domain.FindConflicts(event.Interval, bookings, &event.ID); len(conflicts) > 0 {
				return fmt.Errorf("%w: %d overlapping booking(s)", ErrTimeConflict, len(conflicts))
			}
		}

		updated, err = s.eventRepo.Update(ctx, id, event)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.mapTxError("Update", err)
	}

	s.logger.Info("Update: successfully updated event id=%d", id)
	return models.FromDomainEvent(updated), nil
}

// mapTxError разворачивает ошибки транзакционного сценария в ошибки сервиса
func (s *Service) mapTxError(op string, err error) error {
	switch {
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrTimeConflict),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: %v", op, err)
		return err
	case errors.Is(err, txmanager.ErrSerializationFailure):
		s.logger.Warn("%s: serialization failure, client should retry", op)
		return fmt.Errorf("%w: %v", ErrConcurrentModification, err)
	default:
		s.logger.Error("%s: transaction failed: %v", op, err)
		return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
	}
}
