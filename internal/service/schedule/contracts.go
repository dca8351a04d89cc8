package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// ScheduleRepository интерфейс репозитория календарных исключений
type ScheduleRepository interface {
	CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error)
	DeleteClosure(ctx context.Context, date time.Time) error
	ListClosures(ctx context.Context) ([]*domain.Closure, error)
	UpsertOverride(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error)
	DeleteOverride(ctx context.Context, resourceID int64, date time.Time) error
	ListOverridesByDate(ctx context.Context, date time.Time) ([]*domain.ScheduleOverride, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetResource(ctx context.Context, id int64) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
