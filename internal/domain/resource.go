package domain

import "time"

// Room зал внутри площадки
type Room struct {
	ID          int64
	VenueID     *int64
	Name        string
	MinCapacity *int
	MaxCapacity *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Venue площадка целиком
type Venue struct {
	ID       int64
	Name     string
	Address  *string
	Capacity *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location сводная информация о ресурсе для ответов API
type Location struct {
	Kind     ResourceKind `json:"kind"`
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Capacity *int         `json:"capacity,omitempty"`
	Address  *string      `json:"address,omitempty"`
}
