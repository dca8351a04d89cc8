package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	areaRepo     AreaRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
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
	txManager TransactionManager,
	timing domain.ActivityTiming,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		areaRepo:     areaRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timing:       timing,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и запись выполняются в одной сериализуемой
// транзакции, закрывая гонку check-then-act между параллельными запросами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, items=%d", req.CustomerName, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверяем конфликты и сохраняем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Снапшот каталога и зон
		catalog, areas, err := uc.loadCatalog(txCtx)
		if err != nil {
			return err
		}

		// 2.2. Резолвим позиции: активности, ресурсы, длительности, цена
		items, perPerson, err := resolveItems(req.Items, catalog, uc.timing)
		if err != nil {
			uc.logger.Warn("CreateBooking: item resolution failed: %v", err)
			return err
		}

		// 2.3. Снапшот занятости и календарных исключений
		others, blocks, closures, err := uc.loadOccupancy(txCtx, items)
		if err != nil {
			return err
		}

		// 2.4. Проверяем правила планирования в фиксированном порядке
		if conflict := domain.ValidateBookingItems(items, others, blocks, closures, catalog, areas); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict %s: %s", conflict.Kind, conflict.Message)
			return conflict
		}

		// 2.5. Собираем бронирование с дефолтами для walk-in.
		// Итоговая стоимость - сумма позиций на одного, умноженная на
		// эффективный размер группы
		booking := &domain.Booking{
			CustomerID:   req.CustomerID,
			CustomerName: req.CustomerName,
			GroupSize:    req.GroupSize,
			Status:       domain.StatusBooked,
			Notes:        req.Notes,
			Items:        items,
		}
		if booking.CustomerName == "" {
			booking.CustomerName = domain.WalkInCustomerName
		}
		if booking.GroupSize == 0 {
			booking.GroupSize = domain.MinGroupSize
		}
		booking.TotalPrice = perPerson * float64(booking.GroupSize)

		// 2.6. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return toResponse(result), nil
}

// loadCatalog собирает снапшот каталога и список зон
func (uc *UseCase) loadCatalog(ctx context.Context) (*domain.Catalog, []*domain.Area, error) {
	activities, err := uc.catalogRepo.ListActivities(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list activities: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list activities: %v", ErrInternal, err)
	}

	resources, err := uc.catalogRepo.ListResources(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list resources: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	links, err := uc.catalogRepo.ListResourceLinks(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list resource links: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resource links: %v", ErrInternal, err)
	}

	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list areas: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list areas: %v", ErrInternal, err)
	}

	return domain.NewCatalog(activities, resources, links), areas, nil
}

// loadOccupancy загружает бронирования и блокировки на каждую дату позиций
// и все закрытия заведения
func (uc *UseCase) loadOccupancy(ctx context.Context, items []domain.BookingItem) ([]*domain.Booking, []*domain.Block, []*domain.Closure, error) {
	var others []*domain.Booking
	var blocks []*domain.Block
	seenBookings := make(map[int64]struct{})

	for _, date := range collectDates(items) {
		bookings, err := uc.bookingRepo.GetByDate(ctx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for %s: %v", date.Format(domain.DateFormat), err)
			return nil, nil, nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		for _, booking := range bookings {
			if _, ok := seenBookings[booking.ID]; ok {
				continue
			}
			seenBookings[booking.ID] = struct{}{}
			others = append(others, booking)
		}

		dayBlocks, err := uc.blockRepo.GetByDate(ctx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks for %s: %v", date.Format(domain.DateFormat), err)
			return nil, nil, nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}
		blocks = append(blocks, dayBlocks...)
	}

	closures, err := uc.scheduleRepo.ListClosures(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list closures: %v", err)
		return nil, nil, nil, fmt.Errorf("%w: failed to list closures: %v", ErrInternal, err)
	}

	return others, blocks, closures, nil
}
