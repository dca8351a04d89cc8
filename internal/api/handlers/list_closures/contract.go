package list_closures

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListClosures(ctx context.Context) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
