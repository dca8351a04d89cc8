package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	blockRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/block"
	catalogRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-VenueService/internal/service/blocks/models"
)

// Service сервис для работы с блокировками ресурсов
// Блокировка намеренно не проверяется на конфликты с существующими
// бронированиями: персонал закрывает ресурс даже поверх живых записей
type Service struct {
	blockRepo   BlockRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		blockRepo:   blockRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Create создает блокировку ресурса
// Валидирует только обязательные поля и существование ресурса
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: blocking resource=%d on date=%s at %s for %d min",
		req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid block request for resource=%d: %v", req.ResourceID, err)
		return nil, err
	}

	if _, err := s.catalogRepo.GetResource(ctx, req.ResourceID); err != nil {
		if errors.Is(err, catalogRepo.ErrResourceNotFound) {
			s.logger.Warn("Create: resource=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Create: catalog error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Create - catalog error: %v", ErrInternal, err)
	}

	block, err := s.blockRepo.Create(ctx, req.ToDomainBlock())
	if err != nil {
		s.logger.Error("Create: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%d", block.ID)
	return models.FromDomainBlock(block), nil
}

// GetByDate возвращает все блокировки на указанную дату
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BlockListResponse, error) {
	s.logger.Info("GetByDate: fetching blocks for date=%s", date.Format(domain.DateFormat))

	blocks, err := s.blockRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting block id=%d", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", id)
	return nil
}

func (s *Service) validateCreate(req *models.CreateBlockRequest) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resource id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes%domain.DefaultSlotStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes", ErrInvalidInput, domain.DefaultSlotStepMinutes)
	}
	if len(req.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	return nil
}
