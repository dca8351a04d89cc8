package blocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок ресурсов
type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) (*domain.Block, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Block, error)
	Delete(ctx context.Context, id int64) error
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
