package find_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/domain"
	findSlots "github.com/kmalt/EMS-EventService/internal/usecase/find_slots"
)

const (
	msgInvalidRoomID     = "некорректный ID зала"
	msgInvalidVenueID    = "некорректный ID площадки"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность слота"
	msgMissingResource   = "необходимо указать roomId или venueId"
	msgAmbiguousResource = "roomId и venueId взаимоисключающи"
)

type Handler struct {
	useCase         FindSlotsUseCase
	defaultDuration int
	logger          Logger
}

func NewHandler(useCase FindSlotsUseCase, defaultDuration int, logger Logger) *Handler {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultSlotDurationMinutes
	}
	return &Handler{
		useCase:         useCase,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Handle GET /api/v1/events/availability
// Query params: roomId|venueId (ровно один), date (required, YYYY-MM-DD),
// duration (minutes, optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID, ok := parseOptionalID(query.Get("roomId"))
	if !ok {
		h.logger.Warn("GET /events/availability - Invalid room ID: %q", query.Get("roomId"))
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	venueID, ok := parseOptionalID(query.Get("venueId"))
	if !ok {
		h.logger.Warn("GET /events/availability - Invalid venue ID: %q", query.Get("venueId"))
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /events/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /events/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := h.defaultDuration
	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /events/availability - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &findSlots.Request{
		RoomID:          roomID,
		VenueID:         venueID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrMissingResource):
			h.logger.Warn("GET /events/availability - Missing resource reference")
			handlers.RespondBadRequest(w, msgMissingResource)

		case errors.Is(err, findSlots.ErrAmbiguousResource):
			h.logger.Warn("GET /events/availability - Ambiguous resource reference")
			handlers.RespondBadRequest(w, msgAmbiguousResource)

		case errors.Is(err, findSlots.ErrInvalidInput):
			h.logger.Warn("GET /events/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /events/availability - Failed to find slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/availability - Found %d free slots for %s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseOptionalID парсит опциональный идентификатор из query параметра
func parseOptionalID(raw string) (*int64, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
