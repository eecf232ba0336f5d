package export_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	"github.com/kmalt/EMS-EventService/internal/domain"
	"github.com/kmalt/EMS-EventService/internal/service/calendar"
)

const (
	msgInvalidKind       = "некорректный тип ресурса, ожидается room или venue"
	msgInvalidResourceID = "некорректный ID ресурса"
	msgNotFound          = "зал или площадка не найдены"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{kind}/{resourceId}/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	kind := domain.ResourceKind(vars["kind"])
	if kind != domain.ResourceKindRoom && kind != domain.ResourceKindVenue {
		h.logger.Warn("GET /resources/{kind}/{id}/calendar.ics - Invalid kind: %q", vars["kind"])
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{kind}/{id}/calendar.ics - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	feed, err := h.service.BuildFeed(r.Context(), kind, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrResourceNotFound), errors.Is(err, calendar.ErrUnknownKind):
			h.logger.Warn("GET /resources/{kind}/{id}/calendar.ics - Resource not found: kind=%s, id=%d", kind, resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /resources/{kind}/{id}/calendar.ics - Failed to build feed: kind=%s, id=%d, error=%v",
				kind, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{kind}/{id}/calendar.ics - Feed exported: kind=%s, id=%d", kind, resourceID)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}
