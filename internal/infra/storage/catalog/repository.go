package catalog

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

// Repository репозиторий каталога: активности, ресурсы и группы связанных
// ресурсов. Каталог редактируется административным инструментом вне этого
// сервиса, поэтому репозиторий только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActivities возвращает все активности заведения
func (r *Repository) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "area_id", "price").
		From("activities").
		OrderBy("name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Type,
			&activity.AreaID,
			&activity.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActivities - scan activity: %v", ErrScanRow, err)
		}
		activities = append(activities, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActivities - iterate rows: %v", ErrExecQuery, err)
	}

	return activities, nil
}

// GetActivity получает активность по ID
func (r *Repository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "area_id", "price").
		From("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActivity - build select query: %v", ErrBuildQuery, err)
	}

	var activity domain.Activity
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Type,
		&activity.AreaID,
		&activity.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActivity - scan activity: %v", ErrScanRow, err)
	}

	return &activity, nil
}

// ListResources возвращает все ресурсы заведения
func (r *Repository) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "activity_id", "name", "abbreviation", "capacity").
		From("resources").
		OrderBy("name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		var resource domain.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.ActivityID,
			&resource.Name,
			&resource.Abbreviation,
			&resource.Capacity,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListResources - scan resource: %v", ErrScanRow, err)
		}
		resources = append(resources, &resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResources - iterate rows: %v", ErrExecQuery, err)
	}

	return resources, nil
}

// GetResource получает ресурс по ID
func (r *Repository) GetResource(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "activity_id", "name", "abbreviation", "capacity").
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetResource - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.ActivityID,
		&resource.Name,
		&resource.Abbreviation,
		&resource.Capacity,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetResource - scan resource: %v", ErrScanRow, err)
	}

	return &resource, nil
}

// ListResourceLinks возвращает все группы связанных ресурсов
// Состав группы хранится в JSONB-колонке
func (r *Repository) ListResourceLinks(ctx context.Context) (domain.ResourceLinks, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "resource_ids").
		From("resource_links").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListResourceLinks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListResourceLinks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var links domain.ResourceLinks
	for rows.Next() {
		var link domain.ResourceLink
		var resourceIDs []byte

		if err := rows.Scan(&link.ID, &resourceIDs); err != nil {
			return nil, fmt.Errorf("%w: ListResourceLinks - scan link: %v", ErrScanRow, err)
		}
		if err := json.Unmarshal(resourceIDs, &link.ResourceIDs); err != nil {
			return nil, fmt.Errorf("%w: ListResourceLinks - unmarshal resource ids: %v", ErrScanRow, err)
		}

		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResourceLinks - iterate rows: %v", ErrExecQuery, err)
	}

	return links, nil
}
