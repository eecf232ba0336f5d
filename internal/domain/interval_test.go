package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) TimeInterval {
	t.Helper()
	interval, err := NewTimeInterval(start, end)
	require.NoError(t, err)
	return interval
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 15, hour, min, 0, 0, time.UTC)
}

func TestNewTimeInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "валидный интервал", start: at(10, 0), end: at(12, 0), wantErr: false},
		{name: "нулевая длительность", start: at(10, 0), end: at(10, 0), wantErr: true},
		{name: "конец раньше начала", start: at(12, 0), end: at(10, 0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeInterval(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInterval)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "частичное пересечение",
			a:    mustInterval(t, at(10, 0), at(12, 0)),
			b:    mustInterval(t, at(11, 0), at(13, 0)),
			want: true,
		},
		{
			name: "полное вложение",
			a:    mustInterval(t, at(10, 0), at(14, 0)),
			b:    mustInterval(t, at(11, 0), at(12, 0)),
			want: true,
		},
		{
			name: "совпадающие интервалы",
			a:    mustInterval(t, at(10, 0), at(12, 0)),
			b:    mustInterval(t, at(10, 0), at(12, 0)),
			want: true,
		},
		{
			name: "смежные интервалы не пересекаются",
			a:    mustInterval(t, at(10, 0), at(12, 0)),
			b:    mustInterval(t, at(12, 0), at(14, 0)),
			want: false,
		},
		{
			name: "непересекающиеся интервалы",
			a:    mustInterval(t, at(8, 0), at(9, 0)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeIntervalContains(t *testing.T) {
	outer := mustInterval(t, at(10, 0), at(12, 0))

	assert.True(t, outer.Contains(mustInterval(t, at(10, 30), at(11, 30))))
	assert.True(t, outer.Contains(outer), "интервал содержит сам себя")
	assert.True(t, outer.Contains(mustInterval(t, at(10, 0), at(11, 0))), "совпадение по началу")
	assert.False(t, outer.Contains(mustInterval(t, at(11, 0), at(12, 30))), "выход за конец")
	assert.False(t, outer.Contains(mustInterval(t, at(9, 0), at(11, 0))), "выход за начало")
}

func TestTimeIntervalDuration(t *testing.T) {
	interval := mustInterval(t, at(10, 0), at(12, 30))
	assert.Equal(t, 150*time.Minute, interval.Duration())
}
