package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrActivityNotFound возвращается, когда активность позиции не найдена
	ErrActivityNotFound = errors.New("update_booking: activity not found")

	// ErrResourceNotFound возвращается, когда ресурс позиции не найден
	ErrResourceNotFound = errors.New("update_booking: resource not found")

	// ErrResourceActivityMismatch возвращается, когда ресурс позиции
	// принадлежит другой активности
	ErrResourceActivityMismatch = errors.New("update_booking: resource does not belong to the item activity")

	// ErrInvalidDuration возвращается, когда длительность позиции не
	// соответствует модели планирования активности
	ErrInvalidDuration = errors.New("update_booking: invalid item duration for activity type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
