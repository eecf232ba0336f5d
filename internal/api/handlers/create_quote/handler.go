package create_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/quotes"
	"github.com/kmalt/EMS-EventService/internal/service/quotes/models"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные предложения"
	msgEventNotFound      = "событие не найдено"
	msgEventNotActive     = "нельзя выставить предложение на отменённое событие"
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

// Handle POST /api/v1/events/{eventId}/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/quotes - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quote, err := h.service.Create(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/quotes - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotes.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/quotes - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, quotes.ErrEventNotActive):
			h.logger.Warn("POST /events/{id}/quotes - Event not active: event_id=%d", eventID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgEventNotActive)

		default:
			h.logger.Error("POST /events/{id}/quotes - Failed to create quote: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/quotes - Quote created: event_id=%d, quote_id=%d, number=%s",
		eventID, quote.ID, quote.QuoteNumber)
	handlers.RespondJSON(w, http.StatusCreated, quote)
}
