package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// код ошибки PostgreSQL для нарушения уникальности
const uniqueViolationCode = "23505"

// Repository репозиторий календарных исключений: venue-wide закрытий и
// переопределений фиксированных слотов для (ресурс, дата)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарных исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateClosure закрывает дату для бронирования во всём заведении
func (r *Repository) CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closures").
		Columns("closure_date", "reason").
		Values(closure.Date, closure.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&closure.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrClosureExists
		}
		return nil, fmt.Errorf("%w: CreateClosure - execute insert: %v", ErrExecQuery, err)
	}

	return closure, nil
}

// DeleteClosure снимает закрытие с даты
func (r *Repository) DeleteClosure(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"closure_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// ListClosures возвращает все закрытия заведения
func (r *Repository) ListClosures(ctx context.Context) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "closure_date", "reason").
		From("closures").
		OrderBy("closure_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosures - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var closures []*domain.Closure
	for rows.Next() {
		var closure domain.Closure
		if err := rows.Scan(&closure.ID, &closure.Date, &closure.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListClosures - scan closure: %v", ErrScanRow, err)
		}
		closures = append(closures, &closure)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosures - iterate rows: %v", ErrExecQuery, err)
	}

	return closures, nil
}

// GetClosureByDate получает закрытие на указанную дату
func (r *Repository) GetClosureByDate(ctx context.Context, date time.Time) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "closure_date", "reason").
		From("closures").
		Where(squirrel.Eq{"closure_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClosureByDate - build select query: %v", ErrBuildQuery, err)
	}

	var closure domain.Closure
	err = executor.QueryRowContext(ctx, query, args...).Scan(&closure.ID, &closure.Date, &closure.Reason)

	if err == sql.ErrNoRows {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosureByDate - scan closure: %v", ErrScanRow, err)
	}

	return &closure, nil
}

// UpsertOverride создает или заменяет переопределение фиксированных слотов
// для пары (ресурс, дата)
func (r *Repository) UpsertOverride(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(override.FixedTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - marshal slots: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_overrides").
		Columns("resource_id", "override_date", "fixed_time_slots").
		Values(override.ResourceID, override.Date, slots).
		Suffix("ON CONFLICT (resource_id, override_date) DO UPDATE SET fixed_time_slots = EXCLUDED.fixed_time_slots RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	return override, nil
}

// DeleteOverride удаляет переопределение для пары (ресурс, дата)
func (r *Repository) DeleteOverride(ctx context.Context, resourceID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_overrides").
		Where(squirrel.Eq{
			"resource_id":   resourceID,
			"override_date": date.Format(domain.DateFormat),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// GetOverride получает переопределение для пары (ресурс, дата)
func (r *Repository) GetOverride(ctx context.Context, resourceID int64, date time.Time) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "resource_id", "override_date", "fixed_time_slots").
		From("schedule_overrides").
		Where(squirrel.Eq{
			"resource_id":   resourceID,
			"override_date": date.Format(domain.DateFormat),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// ListOverridesByDate возвращает все переопределения на указанную дату
func (r *Repository) ListOverridesByDate(ctx context.Context, date time.Time) ([]*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "resource_id", "override_date", "fixed_time_slots").
		From("schedule_overrides").
		Where(squirrel.Eq{"override_date": date.Format(domain.DateFormat)}).
		OrderBy("resource_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var overrides []*domain.ScheduleOverride
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOverridesByDate - scan override: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByDate - iterate rows: %v", ErrExecQuery, err)
	}

	return overrides, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.ScheduleOverride, error) {
	var override domain.ScheduleOverride
	var slots []byte

	if err := row.Scan(&override.ID, &override.ResourceID, &override.Date, &slots); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(slots, &override.FixedTimeSlots); err != nil {
		return nil, err
	}

	return &override, nil
}
