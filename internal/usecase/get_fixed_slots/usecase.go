package get_fixed_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	areaRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/area"
	catalogRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
)

// UseCase use case получения свободных фиксированных слотов ресурса на дату
// Переопределение расписания для пары (ресурс, дата) имеет приоритет над
// недельным расписанием зоны
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	areaRepo     AreaRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	timing       domain.ActivityTiming
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	areaRepo AreaRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	timing domain.ActivityTiming,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		areaRepo:     areaRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		timing:       timing,
		logger:       logger,
	}
}

// Execute выполняет расчёт свободных фиксированных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFixedSlots: resource=%d, date=%s", req.ResourceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ResourceID <= 0 {
		uc.logger.Warn("GetFixedSlots: resource id is required")
		return nil, fmt.Errorf("%w: resource id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetFixedSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Резолвим ресурс -> активность -> зону
	resource, err := uc.catalogRepo.GetResource(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetFixedSlots: resource=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetFixedSlots: failed to get resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	activity, err := uc.catalogRepo.GetActivity(ctx, resource.ActivityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetFixedSlots: activity=%d not found for resource=%d", resource.ActivityID, req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetFixedSlots: failed to get activity=%d: %v", resource.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	if !activity.IsFixedTime() {
		uc.logger.Warn("GetFixedSlots: activity=%d is not fixed time", activity.ID)
		return nil, ErrNotFixedTime
	}

	area, err := uc.areaRepo.GetByID(ctx, activity.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("GetFixedSlots: area=%d not found", activity.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("GetFixedSlots: failed to get area=%d: %v", activity.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	// 3. Закрытая дата или закрытый день недели - слотов нет
	closure, err := uc.scheduleRepo.GetClosureByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrClosureNotFound) {
		uc.logger.Error("GetFixedSlots: failed to get closure: %v", err)
		return nil, fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}
	day := area.DayScheduleFor(req.Date)
	if closure != nil || !day.IsOpen {
		uc.logger.Info("GetFixedSlots: no slots, venue or area closed on %s", req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 4. Переопределение расписания имеет приоритет над недельным
	override, err := uc.scheduleRepo.GetOverride(ctx, req.ResourceID, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetFixedSlots: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
	}

	// 5. Загружаем занятость на дату и фильтруем кандидатов
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetFixedSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetFixedSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	links, err := uc.catalogRepo.ListResourceLinks(ctx)
	if err != nil {
		uc.logger.Error("GetFixedSlots: failed to list resource links: %v", err)
		return nil, fmt.Errorf("%w: failed to list resource links: %v", ErrInternal, err)
	}

	occ := domain.BuildOccupancyIndex(req.Date, bookings, blocks, links)
	candidates := domain.FixedSlotCandidates(req.ResourceID, day, override, occ, uc.timing.FixedSlotMinutes)

	uc.logger.Info("GetFixedSlots: %d free slots for resource=%d on %s",
		len(candidates), req.ResourceID, req.Date.Format(domain.DateFormat))

	resp := emptyResponse(req)
	for _, slot := range candidates {
		resp.Slots = append(resp.Slots, slot.String())
	}
	return resp, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		ResourceID: req.ResourceID,
		Date:       req.Date.Format(domain.DateFormat),
		Slots:      []string{},
	}
}
