package schedule

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrClosureExists возвращается при попытке повторно закрыть дату
	ErrClosureExists = errors.New("closure already exists for this date")

	// ErrOverrideNotFound возвращается, когда переопределение расписания не найдено
	ErrOverrideNotFound = errors.New("schedule override not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
