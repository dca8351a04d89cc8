package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	// Нулевой размер группы означает walk-in по умолчанию
	if req.GroupSize < 0 {
		return fmt.Errorf("%w: group size must not be negative", ErrInvalidInput)
	}
	if req.GroupSize > domain.MaxGroupSize {
		return fmt.Errorf("%w: group size must not exceed %d", ErrInvalidInput, domain.MaxGroupSize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	for i, item := range req.Items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}

	return nil
}

// validateItem валидирует одну позицию бронирования
func validateItem(index int, item ItemRequest) error {
	if item.ActivityID <= 0 {
		return fmt.Errorf("%w: item %d: activity id is required", ErrInvalidInput, index)
	}

	if len(item.ResourceIDs) == 0 {
		return fmt.Errorf("%w: item %d: at least one resource is required", ErrInvalidInput, index)
	}

	seen := make(map[int64]struct{}, len(item.ResourceIDs))
	for _, resourceID := range item.ResourceIDs {
		if resourceID <= 0 {
			return fmt.Errorf("%w: item %d: resource id must be positive", ErrInvalidInput, index)
		}
		if _, ok := seen[resourceID]; ok {
			return fmt.Errorf("%w: item %d: duplicate resource id %d", ErrInvalidInput, index, resourceID)
		}
		seen[resourceID] = struct{}{}
	}

	if item.Date.IsZero() {
		return fmt.Errorf("%w: item %d: date is required", ErrInvalidInput, index)
	}

	if item.StartTime.IsZero() {
		return fmt.Errorf("%w: item %d: startTime is required", ErrInvalidInput, index)
	}

	if err := item.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: item %d: invalid startTime format: %v", ErrInvalidInput, index, err)
	}

	if item.DurationMinutes < 0 {
		return fmt.Errorf("%w: item %d: duration must not be negative", ErrInvalidInput, index)
	}

	return nil
}

// resolveItems резолвит позиции запроса в domain позиции: проверяет
// существование активности и ресурсов, принадлежность ресурсов активности
// и приводит длительность к модели планирования активности.
// Возвращаемая сумма считается на одного участника: fixed time стоит
// фиксированную цену за слот, flexi time - цену за каждый шаг длительности;
// итоговая стоимость бронирования умножается на размер группы вызывающим
func resolveItems(items []ItemRequest, catalog *domain.Catalog, timing domain.ActivityTiming) ([]domain.BookingItem, float64, error) {
	resolved := make([]domain.BookingItem, 0, len(items))
	perPerson := 0.0

	for i, item := range items {
		activity, ok := catalog.Activity(item.ActivityID)
		if !ok {
			return nil, 0, fmt.Errorf("%w: item %d: activity %d", ErrActivityNotFound, i, item.ActivityID)
		}

		for _, resourceID := range item.ResourceIDs {
			resource, ok := catalog.Resource(resourceID)
			if !ok {
				return nil, 0, fmt.Errorf("%w: item %d: resource %d", ErrResourceNotFound, i, resourceID)
			}
			if resource.ActivityID != activity.ID {
				return nil, 0, fmt.Errorf("%w: item %d: resource %d belongs to activity %d",
					ErrResourceActivityMismatch, i, resourceID, resource.ActivityID)
			}
		}

		duration := item.DurationMinutes
		if activity.IsFixedTime() && duration == 0 {
			duration = timing.FixedSlotMinutes
		}
		if !timing.ValidItemDuration(activity, duration) {
			return nil, 0, fmt.Errorf("%w: item %d: duration %d for %s activity",
				ErrInvalidDuration, i, duration, activity.Type)
		}

		resolved = append(resolved, domain.BookingItem{
			ActivityID:      activity.ID,
			ResourceIDs:     item.ResourceIDs,
			Date:            item.Date,
			StartTime:       item.StartTime,
			DurationMinutes: duration,
		})

		perPerson += timing.ItemPrice(activity, duration)
	}

	return resolved, perPerson, nil
}

// collectDates возвращает уникальные даты позиций
func collectDates(items []domain.BookingItem) []time.Time {
	seen := make(map[string]struct{}, len(items))
	var dates []time.Time
	for _, item := range items {
		key := item.Date.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, item.Date)
	}
	return dates
}
