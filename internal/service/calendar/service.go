package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/kmalt/EMS-EventService/internal/domain"
	resourceRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/resource"
)

const productID = "-//EMS//EventService//EN"

// Service сервис экспорта календаря ресурса в формате iCalendar
type Service struct {
	eventRepo    EventRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(eventRepo EventRepository, resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		eventRepo:    eventRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// BuildFeed формирует ICS-ленту неотменённых событий ресурса
func (s *Service) BuildFeed(ctx context.Context, kind domain.ResourceKind, resourceID int64) (string, error) {
	location, err := s.resourceRepo.GetLocation(ctx, kind, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, resourceRepo.ErrRoomNotFound), errors.Is(err, resourceRepo.ErrVenueNotFound):
			s.logger.Warn("BuildFeed: %s %d not found", kind, resourceID)
			return "", fmt.Errorf("%w: %s %d", ErrResourceNotFound, kind, resourceID)
		case errors.Is(err, resourceRepo.ErrUnknownKind):
			s.logger.Warn("BuildFeed: unknown resource kind %q", kind)
			return "", ErrUnknownKind
		default:
			s.logger.Error("BuildFeed: failed to resolve %s %d: %v", kind, resourceID, err)
			return "", fmt.Errorf("%w: BuildFeed - resource lookup: %v", ErrInternal, err)
		}
	}

	filter := domain.EventsFilter{}
	switch kind {
	case domain.ResourceKindRoom:
		filter.RoomID = &resourceID
	case domain.ResourceKindVenue:
		filter.VenueID = &resourceID
	}

	events, err := s.eventRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("BuildFeed: failed to list events for %s %d: %v", kind, resourceID, err)
		return "", fmt.Errorf("%w: BuildFeed - list events: %v", ErrInternal, err)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("%s: %s", kindLabel(kind), location.Name))

	now := time.Now().UTC()
	for _, event := range events {
		ve := cal.AddEvent(fmt.Sprintf("event-%d@ems", event.ID))
		ve.SetDtStampTime(now)
		ve.SetCreatedTime(event.CreatedAt)
		ve.SetModifiedAt(event.UpdatedAt)
		ve.SetStartAt(event.Interval.Start)
		ve.SetEndAt(event.Interval.End)
		ve.SetSummary(event.Title)
		ve.SetLocation(location.Name)
		if event.Notes != nil {
			ve.SetDescription(*event.Notes)
		}
		ve.SetStatus(icalStatus(event.Status))
	}

	s.logger.Info("BuildFeed: exported %d events for %s %d", len(events), kind, resourceID)
	return cal.Serialize(), nil
}

// icalStatus отображает статус события на STATUS VEVENT
// CONFIRMED -> CONFIRMED, остальные активные статусы -> TENTATIVE
func icalStatus(status domain.EventStatus) ical.ObjectStatus {
	if status == domain.EventStatusConfirmed {
		return ical.ObjectStatusConfirmed
	}
	return ical.ObjectStatusTentative
}

func kindLabel(kind domain.ResourceKind) string {
	if kind == domain.ResourceKindVenue {
		return "Venue"
	}
	return "Room"
}
