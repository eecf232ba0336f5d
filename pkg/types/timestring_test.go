package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "корректное время", input: "09:30", want: TimeString("09:30")},
		{name: "полночь", input: "00:00", want: TimeString("00:00")},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "часы вне диапазона", input: "25:00", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "мусор", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 510, TimeString("08:30").Minutes())
	assert.Equal(t, 1320, TimeString("22:00").Minutes())
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore(TimeString("08:01")))
	assert.False(t, TimeString("08:00").IsBefore(TimeString("08:00")))
	assert.True(t, TimeString("22:00").IsAfter(TimeString("08:00")))
	assert.False(t, TimeString("08:00").IsAfter(TimeString("08:00")))
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "сдвиг внутри суток", start: TimeString("10:00"), add: 90, want: TimeString("11:30")},
		{name: "сдвиг через границу часа", start: TimeString("10:45"), add: 30, want: TimeString("11:15")},
		{name: "ровно конец суток", start: TimeString("22:00"), add: 120, want: TimeString("24:00")},
		{name: "выход за пределы суток", start: TimeString("23:00"), add: 61, wantErr: true},
		{name: "отрицательный сдвиг за начало суток", start: TimeString("00:30"), add: -60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)
	got := TimeString("08:30").At(date)
	assert.Equal(t, time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC), got)
}
