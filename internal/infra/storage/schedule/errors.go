package schedule

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("schedule.repository: closure not found")

	// ErrClosureExists возвращается при попытке повторно закрыть дату
	ErrClosureExists = errors.New("schedule.repository: closure already exists for this date")

	// ErrOverrideNotFound возвращается, когда переопределение расписания не найдено
	ErrOverrideNotFound = errors.New("schedule.repository: schedule override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
