package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
var ErrInvalidInterval = errors.New("invalid time interval: start must be before end")

// TimeInterval полуоткрытый временной интервал [Start, End)
// Неизменяемый value type: создается заново для каждого запроса
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал с валидацией start < end
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: [%s, %s)",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Соприкасающиеся границы (a.End == b.Start) пересечением не считаются
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains проверяет, что интервал inner целиком лежит внутри a
func (a TimeInterval) Contains(inner TimeInterval) bool {
	return !inner.Start.Before(a.Start) && !inner.End.After(a.End)
}

// Duration возвращает длительность интервала
func (a TimeInterval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// String возвращает представление интервала для логов и change log
func (a TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", a.Start.Format(time.RFC3339), a.End.Format(time.RFC3339))
}
