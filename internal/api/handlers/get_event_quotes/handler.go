package get_event_quotes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/quotes"
)

const (
	msgInvalidEventID = "некорректный ID события"
	msgEventNotFound  = "событие не найдено"
)

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/quotes - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.ListByEvent(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/quotes - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /events/{id}/quotes - Failed to list quotes: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/quotes - Retrieved %d quotes: event_id=%d", len(result.Quotes), eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
