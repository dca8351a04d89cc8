package delete_closure

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	scheduleService "github.com/m04kA/SMC-VenueService/internal/service/schedule"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgClosureNotFound = "закрытие не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/closures/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /closures/{date} - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteClosure(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrClosureNotFound):
			h.logger.Warn("DELETE /closures/%s - Closure not found", rawDate)
			handlers.RespondNotFound(w, msgClosureNotFound)

		default:
			h.logger.Error("DELETE /closures/%s - Failed to delete closure: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closures/%s - Closure deleted", rawDate)
	handlers.RespondNoContent(w)
}
