package create_booking

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность позиции не найдена
	ErrActivityNotFound = errors.New("create_booking: activity not found")

	// ErrResourceNotFound возвращается, когда ресурс позиции не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceActivityMismatch возвращается, когда ресурс позиции
	// принадлежит другой активности
	ErrResourceActivityMismatch = errors.New("create_booking: resource does not belong to the item activity")

	// ErrInvalidDuration возвращается, когда длительность позиции не
	// соответствует модели планирования активности
	ErrInvalidDuration = errors.New("create_booking: invalid item duration for activity type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
