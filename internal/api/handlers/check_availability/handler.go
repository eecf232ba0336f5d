package check_availability

import (
	"errors"
	"net/http"

	"github.com/kmalt/EMS-EventService/internal/api/handlers"
	checkAvailability "github.com/kmalt/EMS-EventService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC 3339"
	msgInvalidPeriod      = "дата начала должна быть раньше даты окончания"
	msgMissingResource    = "необходимо указать roomId или venueId"
	msgAmbiguousResource  = "roomId и venueId взаимоисключающи"
	msgResourceNotFound   = "зал или площадка не найдены"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /events/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidPeriod):
			h.logger.Warn("POST /events/availability - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, checkAvailability.ErrMissingResource):
			h.logger.Warn("POST /events/availability - Missing resource reference")
			handlers.RespondBadRequest(w, msgMissingResource)

		case errors.Is(err, checkAvailability.ErrAmbiguousResource):
			h.logger.Warn("POST /events/availability - Ambiguous resource reference")
			handlers.RespondBadRequest(w, msgAmbiguousResource)

		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("POST /events/availability - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("POST /events/availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/availability - Checked: available=%t, conflicts=%d",
		result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
