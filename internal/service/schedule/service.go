package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-VenueService/internal/service/schedule/models"
)

// Service сервис календарных исключений: venue-wide закрытия и
// переопределения фиксированных слотов для отдельных ресурсов
type Service struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календарных исключений
func NewService(scheduleRepo ScheduleRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// CreateClosure закрывает дату для бронирования во всём заведении
func (s *Service) CreateClosure(ctx context.Context, req *models.CreateClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("CreateClosure: closing date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		s.logger.Warn("CreateClosure: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	closure, err := s.scheduleRepo.CreateClosure(ctx, req.ToDomainClosure())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrClosureExists) {
			s.logger.Warn("CreateClosure: date=%s is already closed", req.Date.Format(domain.DateFormat))
			return nil, ErrClosureExists
		}
		s.logger.Error("CreateClosure: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: CreateClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClosure: successfully created closure id=%d", closure.ID)
	return models.FromDomainClosure(closure), nil
}

// DeleteClosure снимает закрытие с даты
func (s *Service) DeleteClosure(ctx context.Context, date time.Time) error {
	s.logger.Info("DeleteClosure: reopening date=%s", date.Format(domain.DateFormat))

	if err := s.scheduleRepo.DeleteClosure(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrClosureNotFound) {
			s.logger.Warn("DeleteClosure: no closure for date=%s", date.Format(domain.DateFormat))
			return ErrClosureNotFound
		}
		s.logger.Error("DeleteClosure: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: DeleteClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteClosure: successfully reopened date=%s", date.Format(domain.DateFormat))
	return nil
}

// ListClosures возвращает все закрытия заведения
func (s *Service) ListClosures(ctx context.Context) (*models.ClosureListResponse, error) {
	s.logger.Info("ListClosures: fetching closures")

	closures, err := s.scheduleRepo.ListClosures(ctx)
	if err != nil {
		s.logger.Error("ListClosures: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosures - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClosureList(closures), nil
}

// UpsertOverride создает или заменяет переопределение фиксированных слотов
// для пары (ресурс, дата). Слоты нормализуются: сортируются и валидируются
func (s *Service) UpsertOverride(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("UpsertOverride: overriding slots for resource=%d on date=%s",
		req.ResourceID, req.Date.Format(domain.DateFormat))

	if err := s.validateOverride(req); err != nil {
		s.logger.Warn("UpsertOverride: invalid request for resource=%d: %v", req.ResourceID, err)
		return nil, err
	}

	if _, err := s.catalogRepo.GetResource(ctx, req.ResourceID); err != nil {
		if errors.Is(err, catalogRepo.ErrResourceNotFound) {
			s.logger.Warn("UpsertOverride: resource=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpsertOverride: catalog error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: UpsertOverride - catalog error: %v", ErrInternal, err)
	}

	override := req.ToDomainOverride()
	sort.Slice(override.FixedTimeSlots, func(i, j int) bool {
		return override.FixedTimeSlots[i].IsBefore(override.FixedTimeSlots[j])
	})

	override, err := s.scheduleRepo.UpsertOverride(ctx, override)
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: successfully saved override id=%d", override.ID)
	return models.FromDomainOverride(override), nil
}

// DeleteOverride удаляет переопределение для пары (ресурс, дата),
// возвращая ресурс к недельному расписанию зоны
func (s *Service) DeleteOverride(ctx context.Context, resourceID int64, date time.Time) error {
	s.logger.Info("DeleteOverride: removing override for resource=%d on date=%s",
		resourceID, date.Format(domain.DateFormat))

	if err := s.scheduleRepo.DeleteOverride(ctx, resourceID, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: no override for resource=%d on date=%s",
				resourceID, date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for resource=%d: %v", resourceID, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: successfully removed override for resource=%d", resourceID)
	return nil
}

// ListOverridesByDate возвращает все переопределения на указанную дату
func (s *Service) ListOverridesByDate(ctx context.Context, date time.Time) (*models.OverrideListResponse, error) {
	s.logger.Info("ListOverridesByDate: fetching overrides for date=%s", date.Format(domain.DateFormat))

	overrides, err := s.scheduleRepo.ListOverridesByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListOverridesByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListOverridesByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

func (s *Service) validateOverride(req *models.UpsertOverrideRequest) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resource id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	for _, slot := range req.FixedTimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, slot)
		}
	}
	return nil
}
