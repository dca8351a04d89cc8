package get_unavailable_slots

import (
	"context"

	getUnavailableSlots "github.com/m04kA/SMC-VenueService/internal/usecase/get_unavailable_slots"
)

type GetUnavailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getUnavailableSlots.Request) (*getUnavailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
