package get_day_blocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/service/blocks/models"
)

type BlockService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
