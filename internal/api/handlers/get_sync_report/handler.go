package get_sync_report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	syncStatuses "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
)

const (
	msgInvalidEventID = "некорректный ID события"
	msgNotFound       = "событие не найдено"
)

type Handler struct {
	useCase SyncReportUseCase
	logger  Logger
}

func NewHandler(useCase SyncReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/sync-quotes
// Read-only отчёт: что синхронизация изменила бы, без применения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/sync-quotes - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	report, err := h.useCase.GetReport(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, syncStatuses.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/sync-quotes - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /events/{id}/sync-quotes - Failed to build report: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/sync-quotes - Report built: event_id=%d, needs_sync=%t",
		eventID, report.NeedsSync)
	handlers.RespondJSON(w, http.StatusOK, report)
}
