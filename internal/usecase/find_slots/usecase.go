package find_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// UseCase use case поиска свободных слотов ресурса на день
type UseCase struct {
	bookingRepo   BookingRepository
	businessHours domain.BusinessHours
	strideMinutes int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// Рабочие часы и шаг перебора приходят из конфигурации сервиса
func NewUseCase(
	bookingRepo BookingRepository,
	businessHours domain.BusinessHours,
	strideMinutes int,
	logger Logger,
) *UseCase {
	if strideMinutes <= 0 {
		strideMinutes = domain.DefaultSlotStrideMinutes
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		businessHours: businessHours,
		strideMinutes: strideMinutes,
		logger:        logger,
	}
}

// Execute выполняет поиск свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем ресурс
	kind, resourceID, err := domain.ResolveResource(req.RoomID, req.VenueID)
	if err != nil {
		uc.logger.Warn("FindSlots: resource resolution failed: %v", err)
		if errors.Is(err, domain.ErrAmbiguousResource) {
			return nil, ErrAmbiguousResource
		}
		return nil, ErrMissingResource
	}

	// 3. Получаем бронирования ресурса за сутки
	from, to := dayBounds(req.Date)
	bookings, err := uc.bookingRepo.ListByResource(ctx, domain.BookingFilter{
		ResourceID:   resourceID,
		ResourceKind: kind,
		From:         &from,
		To:           &to,
	})
	if err != nil {
		uc.logger.Error("FindSlots: failed to list bookings for %s id=%d: %v", kind, resourceID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Перебираем кандидатов и фильтруем занятые
	slots := generateSlots(req.Date, uc.businessHours, req.DurationMinutes, uc.strideMinutes, bookings)

	uc.logger.Info("FindSlots: %s id=%d date=%s duration=%d found %d free slots",
		kind, resourceID, req.Date.Format(domain.DateFormat), req.DurationMinutes, len(slots))

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
		ExistingEvents:  activeBookings(bookings),
		BusinessHours:   uc.businessHours,
	}, nil
}
