package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
)

// UseCase use case редактирования бронирования
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

// Execute выполняет use case редактирования бронирования
// При проверке конфликтов само редактируемое бронирование исключается из
// снапшота занятости, поэтому неизмененное бронирование всегда проходит
// повторную валидацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, items=%d", req.BookingID, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверяем конфликты и сохраняем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем существующее бронирование
		existing, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Снапшот каталога и зон
		catalog, areas, err := uc.loadCatalog(txCtx)
		if err != nil {
			return err
		}

		// 2.3. Резолвим новый состав позиций
		items, perPerson, err := resolveItems(req.Items, catalog, uc.timing)
		if err != nil {
			uc.logger.Warn("UpdateBooking: item resolution failed: %v", err)
			return err
		}

		// 2.4. Снапшот занятости без самого редактируемого бронирования
		others, blocks, closures, err := uc.loadOccupancy(txCtx, items, req.BookingID)
		if err != nil {
			return err
		}

		// 2.5. Проверяем правила планирования в фиксированном порядке
		if conflict := domain.ValidateBookingItems(items, others, blocks, closures, catalog, areas); conflict != nil {
			uc.logger.Warn("UpdateBooking: conflict %s: %s", conflict.Kind, conflict.Message)
			return conflict
		}

		// 2.6. Применяем изменения, сохраняя статус и историю.
		// Стоимость пересчитывается с эффективным размером группы
		existing.CustomerID = req.CustomerID
		existing.CustomerName = req.CustomerName
		existing.GroupSize = req.GroupSize
		existing.Notes = req.Notes
		existing.Items = items
		if existing.CustomerName == "" {
			existing.CustomerName = domain.WalkInCustomerName
		}
		if existing.GroupSize == 0 {
			existing.GroupSize = domain.MinGroupSize
		}
		existing.TotalPrice = perPerson * float64(existing.GroupSize)

		updated, err := uc.bookingRepo.Update(txCtx, existing)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return toResponse(result), nil
}

// loadCatalog собирает снапшот каталога и список зон
func (uc *UseCase) loadCatalog(ctx context.Context) (*domain.Catalog, []*domain.Area, error) {
	activities, err := uc.catalogRepo.ListActivities(ctx)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list activities: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list activities: %v", ErrInternal, err)
	}

	resources, err := uc.catalogRepo.ListResources(ctx)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list resources: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	links, err := uc.catalogRepo.ListResourceLinks(ctx)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list resource links: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list resource links: %v", ErrInternal, err)
	}

	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list areas: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list areas: %v", ErrInternal, err)
	}

	return domain.NewCatalog(activities, resources, links), areas, nil
}

// loadOccupancy загружает занятость на каждую дату позиций, исключая
// редактируемое бронирование, и все закрытия заведения
func (uc *UseCase) loadOccupancy(ctx context.Context, items []domain.BookingItem, excludeID int64) ([]*domain.Booking, []*domain.Block, []*domain.Closure, error) {
	var others []*domain.Booking
	var blocks []*domain.Block
	seenBookings := make(map[int64]struct{})

	for _, date := range collectDates(items) {
		bookings, err := uc.bookingRepo.GetByDate(ctx, date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings for %s: %v", date.Format(domain.DateFormat), err)
			return nil, nil, nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		for _, booking := range bookings {
			if booking.ID == excludeID {
				continue
			}
			if _, ok := seenBookings[booking.ID]; ok {
				continue
			}
			seenBookings[booking.ID] = struct{}{}
			others = append(others, booking)
		}

		dayBlocks, err := uc.blockRepo.GetByDate(ctx, date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get blocks for %s: %v", date.Format(domain.DateFormat), err)
			return nil, nil, nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}
		blocks = append(blocks, dayBlocks...)
	}

	closures, err := uc.scheduleRepo.ListClosures(ctx)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list closures: %v", err)
		return nil, nil, nil, fmt.Errorf("%w: failed to list closures: %v", ErrInternal, err)
	}

	return others, blocks, closures, nil
}
