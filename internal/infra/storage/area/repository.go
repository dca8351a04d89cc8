package area

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения зон заведения
// Зоны создаются и редактируются административным инструментом вне этого
// сервиса; движку доступности нужен только их снимок, поэтому репозиторий
// только читает. Недельное расписание хранится в JSONB-колонке
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все зоны заведения
func (r *Repository) List(ctx context.Context) ([]*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "schedule").
		From("areas").
		OrderBy("name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan area: %v", ErrScanRow, err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return areas, nil
}

// GetByID получает зону по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "schedule").
		From("areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	area, err := scanArea(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan area: %v", ErrScanRow, err)
	}

	return area, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArea(row rowScanner) (*domain.Area, error) {
	var area domain.Area
	var schedule []byte

	if err := row.Scan(&area.ID, &area.Name, &schedule); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(schedule, &area.Schedule); err != nil {
		return nil, err
	}

	return &area, nil
}
