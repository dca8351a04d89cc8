package get_fixed_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	getFixedSlots "github.com/m04kA/SMC-VenueService/internal/usecase/get_fixed_slots"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDate       = "требуется параметр date"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgResourceNotFound  = "ресурс не найден"
	msgAreaNotFound      = "зона не найдена"
	msgNotFixedTime      = "активность ресурса не использует фиксированные слоты"
)

type Handler struct {
	useCase GetFixedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFixedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/fixed-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{resourceId}/fixed-slots - Invalid resource id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /resources/%d/fixed-slots - Missing date parameter", resourceID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /resources/%d/fixed-slots - Invalid date %q: %v", resourceID, rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFixedSlots.Request{
		ResourceID: resourceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFixedSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/%d/fixed-slots - Resource not found", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getFixedSlots.ErrAreaNotFound):
			h.logger.Warn("GET /resources/%d/fixed-slots - Area not found", resourceID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, getFixedSlots.ErrNotFixedTime):
			h.logger.Warn("GET /resources/%d/fixed-slots - Not a fixed time activity", resourceID)
			handlers.RespondBadRequest(w, msgNotFixedTime)

		case errors.Is(err, getFixedSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/%d/fixed-slots - Invalid input: %v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /resources/%d/fixed-slots - Failed: date=%s, error=%v", resourceID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/%d/fixed-slots - %d free slots for date=%s", resourceID, len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
