package domain

// Значения по умолчанию для поиска слотов
const (
	DefaultBusinessHoursStart  = "08:00"
	DefaultBusinessHoursEnd    = "22:00"
	DefaultSlotStrideMinutes   = 30
	DefaultSlotDurationMinutes = 120
	DefaultQuoteValidityDays   = 30
)

// Бизнес-ограничения валидации
const (
	MinSlotDurationMinutes = 30
	MaxSlotDurationMinutes = 24 * 60
	MaxTitleLength         = 200
	MaxNotesLength         = 1000
)

// Форматы даты и времени
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)
