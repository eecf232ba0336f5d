package find_slots

import (
	"time"

	findSlots "github.com/kmalt/EMS-EventService/internal/usecase/find_slots"
)

// SlotResponse свободный временной слот
type SlotResponse struct {
	StartTime       string `json:"startTime"` // RFC 3339
	EndTime         string `json:"endTime"`   // RFC 3339
	DurationMinutes int    `json:"durationMinutes"`
}

// ExistingEventResponse занятый интервал дня
type ExistingEventResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// FindSlotsResponse HTTP response model
type FindSlotsResponse struct {
	Date            string                  `json:"date"` // YYYY-MM-DD
	DurationMinutes int                     `json:"durationMinutes"`
	BusinessHours   BusinessHoursResponse   `json:"businessHours"`
	Slots           []SlotResponse          `json:"slots"`
	ExistingEvents  []ExistingEventResponse `json:"existingEvents"`
}

// BusinessHoursResponse рабочие часы ресурса
type BusinessHoursResponse struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *FindSlotsResponse {
	out := &FindSlotsResponse{
		Date:            resp.Date.Format("2006-01-02"),
		DurationMinutes: resp.DurationMinutes,
		BusinessHours: BusinessHoursResponse{
			Start: resp.BusinessHours.Start.String(),
			End:   resp.BusinessHours.End.String(),
		},
		Slots:          make([]SlotResponse, 0, len(resp.Slots)),
		ExistingEvents: make([]ExistingEventResponse, 0, len(resp.ExistingEvents)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:       slot.StartTime.Format(time.RFC3339),
			EndTime:         slot.EndTime.Format(time.RFC3339),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	for _, event := range resp.ExistingEvents {
		out.ExistingEvents = append(out.ExistingEvents, ExistingEventResponse{
			ID:        event.ID,
			Title:     event.Title,
			StartDate: event.Interval.Start.Format(time.RFC3339),
			EndDate:   event.Interval.End.Format(time.RFC3339),
			Status:    string(event.Status),
		})
	}

	return out
}
