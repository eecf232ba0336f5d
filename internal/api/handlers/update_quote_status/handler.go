package update_quote_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
	updateQuoteStatus "github.com/kmalt/EMS-EventService/internal/usecase/update_quote_status"
)

const (
	msgInvalidQuoteID     = "некорректный ID предложения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус предложения"
	msgIllegalTransition  = "недопустимый переход статуса предложения"
	msgNotFound           = "предложение не найдено"
	msgConcurrentConflict = "конкурентное изменение, повторите запрос"
	msgSyncFailed         = "статус предложения обновлён, но синхронизация события не выполнена"
)

type Handler struct {
	useCase UpdateQuoteStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateQuoteStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/quotes/{quoteId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteID, err := strconv.ParseInt(vars["quoteId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /quotes/{id}/status - Invalid quote ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	var req UpdateQuoteStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /quotes/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateQuoteStatus.Request{
		QuoteID: quoteID,
		Status:  domain.QuoteStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, updateQuoteStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /quotes/{id}/status - Invalid status %q: quote_id=%d", req.Status, quoteID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateQuoteStatus.ErrQuoteNotFound):
			h.logger.Warn("PATCH /quotes/{id}/status - Quote not found: quote_id=%d", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateQuoteStatus.ErrIllegalTransition):
			h.logger.Warn("PATCH /quotes/{id}/status - Illegal transition: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIllegalTransition)

		case errors.Is(err, syncStatuses.ErrConcurrentModification):
			h.logger.Warn("PATCH /quotes/{id}/status - Concurrent modification: quote_id=%d", quoteID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, syncStatuses.ErrPartialSync):
			h.logger.Error("PATCH /quotes/{id}/status - Partial sync: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSyncFailed)

		default:
			h.logger.Error("PATCH /quotes/{id}/status - Failed to update status: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /quotes/{id}/status - Status updated: quote_id=%d, status=%s", quoteID, result.Quote.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
