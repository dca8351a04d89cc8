package get_fixed_slots

import (
	"context"

	getFixedSlots "github.com/m04kA/SMC-VenueService/internal/usecase/get_fixed_slots"
)

type GetFixedSlotsUseCase interface {
	Execute(ctx context.Context, req *getFixedSlots.Request) (*getFixedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
