package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByDate получает все бронирования, у которых есть хотя бы одна позиция
// на указанную дату. Используется лентой бронирований на день
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetByDate: fetching bookings for date=%s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// CycleStatus переводит бронирование в следующий статус по циклу
// Booked -> Checked In -> Done -> Booked
func (s *Service) CycleStatus(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CycleStatus: cycling status for booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CycleStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CycleStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CycleStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.Status.Valid() {
		s.logger.Warn("CycleStatus: booking id=%d has unknown status=%s", id, booking.Status)
		return nil, ErrInvalidStatus
	}

	newStatus := booking.Status.Next()
	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CycleStatus: booking id=%d not found during update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CycleStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CycleStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CycleStatus: booking id=%d moved %s -> %s", id, booking.Status, newStatus)
	booking.Status = newStatus
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
