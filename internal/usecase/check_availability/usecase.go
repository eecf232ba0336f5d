package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
	resourceRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/resource"
)

// UseCase use case проверки доступности ресурса на интервал времени
// Чистое решение поверх снимка бронирований: ничего не изменяет, только
// сообщает о конфликтах; атомарность create/update обеспечивают вызывающие
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация интервала: конструктор отвергает start >= end,
	// нулевая длительность сюда не доходит
	proposed, err := domain.NewTimeInterval(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	// 2. Определяем ресурс
	kind, resourceID, err := domain.ResolveResource(req.RoomID, req.VenueID)
	if err != nil {
		uc.logger.Warn("CheckAvailability: resource resolution failed: %v", err)
		if errors.Is(err, domain.ErrAmbiguousResource) {
			return nil, ErrAmbiguousResource
		}
		return nil, ErrMissingResource
	}

	// 3. Получаем информацию о ресурсе (и заодно проверяем его существование)
	location, err := uc.resourceRepo.GetLocation(ctx, kind, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrRoomNotFound) || errors.Is(err, resourceRepo.ErrVenueNotFound) {
			uc.logger.Warn("CheckAvailability: %s id=%d not found", kind, resourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get %s id=%d: %v", kind, resourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 4. Получаем снимок бронирований ресурса, пересекающих период
	bookings, err := uc.bookingRepo.ListByResource(ctx, domain.BookingFilter{
		ResourceID:   resourceID,
		ResourceKind: kind,
		From:         &proposed.Start,
		To:           &proposed.End,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings for %s id=%d: %v", kind, resourceID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Чистый поиск конфликтов: CANCELLED и исключённое событие пропускаются
	conflicts := domain.FindConflicts(proposed, bookings, req.ExcludeEventID)

	uc.logger.Info("CheckAvailability: %s id=%d period=%s available=%t conflicts=%d",
		kind, resourceID, proposed, len(conflicts) == 0, len(conflicts))

	return &Response{
		Available:       len(conflicts) == 0,
		Conflicts:       conflicts,
		Location:        location,
		RequestedPeriod: proposed,
	}, nil
}
