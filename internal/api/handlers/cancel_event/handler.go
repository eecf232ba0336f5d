package cancel_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/domain"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
	"github.com/kmalt/EMS-EventService/pkg/ptr"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgNotFound           = "событие не найдено"
	msgConcurrentConflict = "конкурентное изменение, повторите запрос"
	msgPartialSync        = "событие отменено, но не все предложения обновлены"
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

// Handle PATCH /api/v1/events/{eventId}/cancel
// Отмена события - частный случай синхронизации event→quotes:
// событие переводится в CANCELLED, непринятые предложения - в EXPIRED
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /events/{id}/cancel - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &syncStatuses.Request{
		EventID:     eventID,
		EventStatus: ptr.Ptr(domain.EventStatusCancelled),
		Direction:   syncStatuses.DirectionEventToQuotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, syncStatuses.ErrEventNotFound):
			h.logger.Warn("PATCH /events/{id}/cancel - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, syncStatuses.ErrConcurrentModification):
			h.logger.Warn("PATCH /events/{id}/cancel - Concurrent modification: event_id=%d", eventID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, syncStatuses.ErrPartialSync):
			h.logger.Error("PATCH /events/{id}/cancel - Partial sync: event_id=%d, error=%v", eventID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialSync)

		default:
			h.logger.Error("PATCH /events/{id}/cancel - Failed to cancel event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/{id}/cancel - Event cancelled: event_id=%d, quotes_expired=%d",
		eventID, result.QuotesUpdated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
