package find_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

func testHours(t *testing.T) domain.BusinessHours {
	t.Helper()
	hours, err := domain.NewBusinessHours("08:00", "22:00")
	require.NoError(t, err)
	return hours
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func bookingAt(t *testing.T, id int64, status domain.EventStatus, start, end time.Time) *domain.Booking {
	t.Helper()
	interval, err := domain.NewTimeInterval(start, end)
	require.NoError(t, err)
	return &domain.Booking{ID: id, Interval: interval, Status: status}
}

func TestGenerateSlots(t *testing.T) {
	date := testDate()
	hours := testHours(t)
	hhmm := func(hour, min int) time.Time {
		return time.Date(2026, 9, 15, hour, min, 0, 0, time.UTC)
	}

	t.Run("свободный день", func(t *testing.T) {
		slots := generateSlots(date, hours, 120, 30, nil)

		// 08:00..20:00 с шагом 30 минут - 25 кандидатов, все свободны
		require.Len(t, slots, 25)
		assert.Equal(t, hhmm(8, 0), slots[0].StartTime)
		assert.Equal(t, hhmm(10, 0), slots[0].EndTime)
		assert.Equal(t, 120, slots[0].DurationMinutes)
		assert.Equal(t, hhmm(20, 0), slots[len(slots)-1].StartTime)
		assert.Equal(t, hhmm(22, 0), slots[len(slots)-1].EndTime)
	})

	t.Run("бронирование вырезает пересекающихся кандидатов", func(t *testing.T) {
		bookings := []*domain.Booking{
			bookingAt(t, 1, domain.EventStatusConfirmed, hhmm(10, 0), hhmm(12, 0)),
		}

		slots := generateSlots(date, hours, 120, 30, bookings)

		// Остаются 08:00 (конец ровно в начале брони) и 12:00..20:00
		require.Len(t, slots, 18)
		assert.Equal(t, hhmm(8, 0), slots[0].StartTime)
		assert.Equal(t, hhmm(12, 0), slots[1].StartTime)

		for _, slot := range slots {
			assert.False(t, slot.StartTime.After(hhmm(8, 0)) && slot.StartTime.Before(hhmm(12, 0)),
				"слот %s пересекается с бронированием", slot.StartTime.Format("15:04"))
		}
	})

	t.Run("отменённое бронирование не блокирует слоты", func(t *testing.T) {
		bookings := []*domain.Booking{
			bookingAt(t, 1, domain.EventStatusCancelled, hhmm(10, 0), hhmm(12, 0)),
		}

		slots := generateSlots(date, hours, 120, 30, bookings)
		assert.Len(t, slots, 25)
	})

	t.Run("длительность больше рабочего дня", func(t *testing.T) {
		slots := generateSlots(date, hours, 15*60, 30, nil)
		assert.Empty(t, slots)
	})

	t.Run("длительность ровно в рабочий день", func(t *testing.T) {
		slots := generateSlots(date, hours, 14*60, 30, nil)

		require.Len(t, slots, 1)
		assert.Equal(t, hhmm(8, 0), slots[0].StartTime)
		assert.Equal(t, hhmm(22, 0), slots[0].EndTime)
	})

	t.Run("слоты отсортированы по возрастанию начала", func(t *testing.T) {
		bookings := []*domain.Booking{
			bookingAt(t, 1, domain.EventStatusReserved, hhmm(9, 0), hhmm(10, 0)),
			bookingAt(t, 2, domain.EventStatusQuoted, hhmm(14, 0), hhmm(16, 0)),
		}

		slots := generateSlots(date, hours, 60, 30, bookings)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].StartTime.Before(slots[i].StartTime))
		}
	})
}

func TestActiveBookings(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(t, 1, domain.EventStatusReserved, time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC), time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)),
		bookingAt(t, 2, domain.EventStatusCancelled, time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC), time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)),
		bookingAt(t, 3, domain.EventStatusConfirmed, time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC), time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)),
	}

	active := activeBookings(bookings)
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestDayBounds(t *testing.T) {
	from, to := dayBounds(time.Date(2026, 9, 15, 17, 42, 11, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), to)
}
