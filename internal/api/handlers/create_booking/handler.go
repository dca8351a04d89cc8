package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени позиции"
	msgVenueClosed        = "заведение закрыто в выбранную дату"
	msgAreaClosed         = "зона закрыта или без персонала в выбранное время"
	msgDoubleBooked       = "ресурс уже занят в выбранное время"
	msgCapacityExceeded   = "недостаточно персонала на выбранное время"
	msgMissingConfig      = "конфигурация активности или ресурса неполна"
	msgActivityNotFound   = "активность не найдена"
	msgResourceNotFound   = "ресурс не найден"
	msgResourceMismatch   = "ресурс не принадлежит активности позиции"
	msgInvalidDuration    = "некорректная длительность позиции"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVenueClosed):
			h.logger.Warn("POST /bookings - Venue closed: %v", err)
			handlers.RespondConflict(w, msgVenueClosed)

		case errors.Is(err, domain.ErrAreaClosed):
			h.logger.Warn("POST /bookings - Area closed: %v", err)
			handlers.RespondConflict(w, msgAreaClosed)

		case errors.Is(err, domain.ErrResourceDoubleBooked):
			h.logger.Warn("POST /bookings - Resource double booked: %v", err)
			handlers.RespondConflict(w, msgDoubleBooked)

		case errors.Is(err, domain.ErrStaffCapacityExceeded):
			h.logger.Warn("POST /bookings - Staff capacity exceeded: %v", err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, domain.ErrMissingConfiguration):
			h.logger.Warn("POST /bookings - Missing configuration: %v", err)
			handlers.RespondConflict(w, msgMissingConfig)

		case errors.Is(err, createBooking.ErrActivityNotFound):
			h.logger.Warn("POST /bookings - Activity not found: %v", err)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrResourceActivityMismatch):
			h.logger.Warn("POST /bookings - Resource/activity mismatch: %v", err)
			handlers.RespondBadRequest(w, msgResourceMismatch)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
