package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Block, error)
}

// AreaRepository интерфейс репозитория зон заведения
type AreaRepository interface {
	List(ctx context.Context) ([]*domain.Area, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	ListResources(ctx context.Context) ([]*domain.Resource, error)
	ListResourceLinks(ctx context.Context) (domain.ResourceLinks, error)
}

// ScheduleRepository интерфейс репозитория календарных исключений
type ScheduleRepository interface {
	ListClosures(ctx context.Context) ([]*domain.Closure, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
