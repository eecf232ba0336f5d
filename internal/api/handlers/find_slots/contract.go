package find_slots

import (
	"context"

	findSlots "github.com/kmalt/EMS-EventService/internal/usecase/find_slots"
)

type FindSlotsUseCase interface {
	Execute(ctx context.Context, req *findSlots.Request) (*findSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
