package track_quote_view

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/service/quotes"
)

const (
	msgInvalidQuoteID = "некорректный ID предложения"
	msgNotFound       = "предложение не найдено"
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

// Handle POST /api/v1/quotes/{quoteId}/view/{token}
// Публичный эндпоинт: клиент отмечает просмотр по токену из письма,
// токен и ID должны указывать на одно предложение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteID, err := strconv.ParseInt(vars["quoteId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /quotes/{id}/view/{token} - Invalid quote ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	quote, err := h.service.TrackView(r.Context(), vars["token"])
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrQuoteNotFound):
			h.logger.Warn("POST /quotes/{id}/view/{token} - Unknown token: quote_id=%d", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /quotes/{id}/view/{token} - Failed to track view: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Токен чужого предложения не раскрываем
	if quote.ID != quoteID {
		h.logger.Warn("POST /quotes/{id}/view/{token} - Token does not match quote: quote_id=%d, token_quote_id=%d",
			quoteID, quote.ID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("POST /quotes/{id}/view/{token} - View tracked: quote_id=%d, status=%s", quote.ID, quote.Status)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
