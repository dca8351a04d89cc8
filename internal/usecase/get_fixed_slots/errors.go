package get_fixed_slots

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("get_fixed_slots: resource not found")

	// ErrAreaNotFound возвращается, когда зона активности не найдена
	ErrAreaNotFound = errors.New("get_fixed_slots: area not found")

	// ErrNotFixedTime возвращается, когда активность ресурса не является
	// активностью с фиксированным временем
	ErrNotFixedTime = errors.New("get_fixed_slots: activity is not a fixed time activity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_fixed_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_fixed_slots: internal error")
)
