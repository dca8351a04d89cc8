package delete_closure

import (
	"context"
	"time"
)

type ScheduleService interface {
	DeleteClosure(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
