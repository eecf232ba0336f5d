package sync_quotes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус"
	msgInvalidDirection   = "некорректное направление синхронизации"
	msgNothingRequested   = "для выбранного направления требуется статус"
	msgIllegalTransition  = "недопустимый переход статуса события"
	msgNotFound           = "событие не найдено"
	msgConcurrentConflict = "конкурентное изменение, повторите запрос"
	msgPartialSync        = "синхронизация выполнена частично"
)

type Handler struct {
	useCase SyncStatusesUseCase
	logger  Logger
}

func NewHandler(useCase SyncStatusesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/sync-quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/sync-quotes - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req SyncQuotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/sync-quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, ok := req.ToUseCaseRequest(eventID)
	if !ok {
		h.logger.Warn("POST /events/{id}/sync-quotes - Invalid status in request: event_id=%d", eventID)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, syncStatuses.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/sync-quotes - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, syncStatuses.ErrInvalidDirection):
			h.logger.Warn("POST /events/{id}/sync-quotes - Invalid direction: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, syncStatuses.ErrNothingRequested):
			h.logger.Warn("POST /events/{id}/sync-quotes - Nothing requested: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgNothingRequested)

		case errors.Is(err, domain.ErrIllegalTransition):
			h.logger.Warn("POST /events/{id}/sync-quotes - Illegal transition: event_id=%d, error=%v", eventID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIllegalTransition)

		case errors.Is(err, syncStatuses.ErrConcurrentModification):
			h.logger.Warn("POST /events/{id}/sync-quotes - Concurrent modification: event_id=%d", eventID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, syncStatuses.ErrPartialSync):
			h.logger.Error("POST /events/{id}/sync-quotes - Partial sync: event_id=%d, error=%v", eventID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialSync)

		default:
			h.logger.Error("POST /events/{id}/sync-quotes - Failed to sync: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/sync-quotes - Sync done: event_id=%d, event_updated=%t, quotes_updated=%d",
		eventID, result.EventUpdated, result.QuotesUpdated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
