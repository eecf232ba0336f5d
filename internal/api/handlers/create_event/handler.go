package create_event

import (
	"errors"
	"net/http"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/events"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные события"
	msgResourceNotFound   = "зал или площадка не найдены"
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

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /events - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	event, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, events.ErrResourceNotFound):
			h.logger.Warn("POST /events - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, events.ErrTimeConflict):
			h.logger.Warn("POST /events - Time conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, events.ErrConcurrentModification):
			h.logger.Warn("POST /events - Concurrent modification: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("POST /events - Failed to create event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: event_id=%d", event.ID)
	handlers.RespondJSON(w, http.StatusCreated, event)
}
