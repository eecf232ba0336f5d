package list_events

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/events"
	"github.com/kmalt/EMS-EventService/internal/service/events/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgInvalidDate   = "некорректный формат даты, ожидается RFC 3339"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events
// Query params: from, to (RFC 3339), status, roomId, venueId, clientId,
// includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListEventsRequest{}

	// Период выборки
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /events - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /events - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.To = &to
	}

	// Фильтры по ресурсу и клиенту
	var ok bool
	if req.RoomID, ok = parseOptionalID(query.Get("roomId")); !ok {
		h.logger.Warn("GET /events - Invalid roomId: %q", query.Get("roomId"))
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	if req.VenueID, ok = parseOptionalID(query.Get("venueId")); !ok {
		h.logger.Warn("GET /events - Invalid venueId: %q", query.Get("venueId"))
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	if req.ClientID, ok = parseOptionalID(query.Get("clientId")); !ok {
		h.logger.Warn("GET /events - Invalid clientId: %q", query.Get("clientId"))
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /events - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /events - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - Retrieved %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
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
