package check_availability

import (
	"time"

	checkAvailability "github.com/kmalt/EMS-EventService/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	StartDate      string `json:"startDate"` // RFC 3339
	EndDate        string `json:"endDate"`   // RFC 3339
	RoomID         *int64 `json:"roomId,omitempty"`
	VenueID        *int64 `json:"venueId,omitempty"`
	ExcludeEventID *int64 `json:"excludeEventId,omitempty"`
}

// ConflictResponse краткое описание конфликтующего бронирования
type ConflictResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
	Resource  ResourceResponse   `json:"resource"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
}

// ResourceResponse описание запрошенного ресурса
type ResourceResponse struct {
	Kind     string `json:"kind"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	startDate, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		StartDate:      startDate,
		EndDate:        endDate,
		RoomID:         r.RoomID,
		VenueID:        r.VenueID,
		ExcludeEventID: r.ExcludeEventID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		Available: resp.Available,
		Conflicts: make([]ConflictResponse, 0, len(resp.Conflicts)),
		Resource: ResourceResponse{
			Kind:     string(resp.Location.Kind),
			ID:       resp.Location.ID,
			Name:     resp.Location.Name,
			Capacity: resp.Location.Capacity,
		},
		StartDate: resp.RequestedPeriod.Start.Format(time.RFC3339),
		EndDate:   resp.RequestedPeriod.End.Format(time.RFC3339),
	}

	for _, c := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictResponse{
			ID:        c.ID,
			Title:     c.Title,
			StartDate: c.Interval.Start.Format(time.RFC3339),
			EndDate:   c.Interval.End.Format(time.RFC3339),
			Status:    string(c.Status),
		})
	}

	return out
}
