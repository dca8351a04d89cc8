package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	updateBooking "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени позиции"
	msgBookingNotFound    = "бронирование не найдено"
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
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{bookingId} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, domain.ErrVenueClosed):
			h.logger.Warn("PUT /bookings/%d - Venue closed: %v", bookingID, err)
			handlers.RespondConflict(w, msgVenueClosed)

		case errors.Is(err, domain.ErrAreaClosed):
			h.logger.Warn("PUT /bookings/%d - Area closed: %v", bookingID, err)
			handlers.RespondConflict(w, msgAreaClosed)

		case errors.Is(err, domain.ErrResourceDoubleBooked):
			h.logger.Warn("PUT /bookings/%d - Resource double booked: %v", bookingID, err)
			handlers.RespondConflict(w, msgDoubleBooked)

		case errors.Is(err, domain.ErrStaffCapacityExceeded):
			h.logger.Warn("PUT /bookings/%d - Staff capacity exceeded: %v", bookingID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, domain.ErrMissingConfiguration):
			h.logger.Warn("PUT /bookings/%d - Missing configuration: %v", bookingID, err)
			handlers.RespondConflict(w, msgMissingConfig)

		case errors.Is(err, updateBooking.ErrActivityNotFound):
			h.logger.Warn("PUT /bookings/%d - Activity not found: %v", bookingID, err)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, updateBooking.ErrResourceNotFound):
			h.logger.Warn("PUT /bookings/%d - Resource not found: %v", bookingID, err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, updateBooking.ErrResourceActivityMismatch):
			h.logger.Warn("PUT /bookings/%d - Resource/activity mismatch: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgResourceMismatch)

		case errors.Is(err, updateBooking.ErrInvalidDuration):
			h.logger.Warn("PUT /bookings/%d - Invalid duration: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
