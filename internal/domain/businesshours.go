package domain

import (
	"fmt"
	"time"

	"github.com/kmalt/EMS-EventService/pkg/types"
)

// BusinessHours рабочие часы площадки в пределах одних суток
type BusinessHours struct {
	Start types.TimeString
	End   types.TimeString
}

// NewBusinessHours создает рабочие часы с валидацией start < end
func NewBusinessHours(start, end string) (BusinessHours, error) {
	startTS, err := types.NewTimeStringFromString(start)
	if err != nil {
		return BusinessHours{}, err
	}
	endTS, err := types.NewTimeStringFromString(end)
	if err != nil {
		return BusinessHours{}, err
	}
	if !startTS.IsBefore(endTS) {
		return BusinessHours{}, fmt.Errorf("%w: business hours %s-%s", ErrInvalidInterval, start, end)
	}
	return BusinessHours{Start: startTS, End: endTS}, nil
}

// SpanMinutes возвращает длину рабочего дня в минутах
func (h BusinessHours) SpanMinutes() int {
	return h.End.Minutes() - h.Start.Minutes()
}

// On привязывает рабочие часы к конкретной дате
func (h BusinessHours) On(date time.Time) (TimeInterval, error) {
	return NewTimeInterval(h.Start.At(date), h.End.At(date))
}
