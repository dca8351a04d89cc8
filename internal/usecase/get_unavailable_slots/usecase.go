package get_unavailable_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
)

// UseCase use case расчёта производных недоступных интервалов на дату
// Прямая занятость (бронирования и блокировки) сюда не входит — клиент
// рисует её из самих бронирований; здесь считаются только интервалы,
// недоступные из-за исчерпания персонала или закрытой зоны
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	areaRepo     AreaRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	grid         domain.ScheduleGrid
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	areaRepo AreaRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	grid domain.ScheduleGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		areaRepo:     areaRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		grid:         grid,
		logger:       logger,
	}
}

// Execute выполняет расчёт недоступных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUnavailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetUnavailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Загружаем каталог и зоны
	catalog, areas, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Если дата закрыта для всего заведения - недоступно всё
	closure, err := uc.scheduleRepo.GetClosureByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrClosureNotFound) {
		uc.logger.Error("GetUnavailableSlots: failed to get closure: %v", err)
		return nil, fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}
	if closure != nil {
		uc.logger.Info("GetUnavailableSlots: venue is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.wholeDayResponse(req, catalog, areas), nil
	}

	// 4. Загружаем занятость на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 5. Считаем недоступность по сетке
	occ := domain.BuildOccupancyIndex(req.Date, bookings, blocks, catalog.Links())
	slots := domain.ComputeUnavailability(req.Date, uc.grid, catalog, areas, occ)

	uc.logger.Info("GetUnavailableSlots: computed %d unavailable slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return toResponse(req, slots), nil
}

// loadCatalog собирает снапшот каталога и список зон
func (uc *UseCase) loadCatalog(ctx context.Context) (*domain.Catalog, []*domain.Area, error) {
	activities, err := uc.catalogRepo.ListActivities(ctx)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to list activities: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list activities: %v", ErrInternal, err)
	}

	resources, err := uc.catalogRepo.ListResources(ctx)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to list resources: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	links, err := uc.catalogRepo.ListResourceLinks(ctx)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to list resource links: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resource links: %v", ErrInternal, err)
	}

	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetUnavailableSlots: failed to list areas: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list areas: %v", ErrInternal, err)
	}

	return domain.NewCatalog(activities, resources, links), areas, nil
}

// wholeDayResponse помечает все ресурсы недоступными на всё рабочее окно
func (uc *UseCase) wholeDayResponse(req *Request, catalog *domain.Catalog, areas []*domain.Area) *Response {
	span := uc.grid.Span()

	var slots []domain.UnavailableSlot
	for _, area := range areas {
		for _, r := range catalog.ResourcesInArea(area.ID) {
			slots = append(slots, domain.UnavailableSlot{
				ResourceID:      r.ID,
				StartTime:       span.StartTime(),
				DurationMinutes: span.Duration(),
			})
		}
	}

	return toResponse(req, slots)
}

func toResponse(req *Request, slots []domain.UnavailableSlot) *Response {
	resp := &Response{
		Date:  req.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ResourceID:      slot.ResourceID,
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}
	return resp
}
