package update_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/events"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные события"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC 3339"
	msgNotFound           = "событие не найдено"
	msgTimeConflict       = "период пересекается с существующим бронированием"
	msgConcurrentConflict = "конкурентное изменение, повторите запрос"
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

// Handle PATCH /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /events/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /events/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	event, err := h.service.Update(r.Context(), eventID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PATCH /events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("PATCH /events/{id} - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, events.ErrTimeConflict):
			h.logger.Warn("PATCH /events/{id} - Time conflict: event_id=%d", eventID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, events.ErrConcurrentModification):
			h.logger.Warn("PATCH /events/{id} - Concurrent modification: event_id=%d", eventID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("PATCH /events/{id} - Failed to update event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/{id} - Event updated successfully: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusOK, event)
}
