package upsert_override

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	scheduleService "github.com/m04kA/SMC-VenueService/internal/service/schedule"
	"github.com/m04kA/SMC-VenueService/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot        = "некорректный формат слота, ожидается HH:MM"
	msgResourceNotFound   = "ресурс не найден"
)

// UpsertOverrideRequest HTTP request model
type UpsertOverrideRequest struct {
	FixedTimeSlots []string `json:"fixedTimeSlots"` // ["10:00", "11:00"]
}

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

// Handle PUT /api/v1/resources/{resourceId}/schedule-overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /resources/{resourceId}/schedule-overrides/{date} - Invalid resource id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /resources/%d/schedule-overrides/{date} - Invalid date: %v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/%d/schedule-overrides - Invalid request body: %v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slots := make([]types.TimeString, 0, len(req.FixedTimeSlots))
	for _, raw := range req.FixedTimeSlots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("PUT /resources/%d/schedule-overrides - Invalid slot %q: %v", resourceID, raw, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
			return
		}
		slots = append(slots, slot)
	}

	result, err := h.service.UpsertOverride(r.Context(), &models.UpsertOverrideRequest{
		ResourceID:     resourceID,
		Date:           date,
		FixedTimeSlots: slots,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrResourceNotFound):
			h.logger.Warn("PUT /resources/%d/schedule-overrides - Resource not found", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /resources/%d/schedule-overrides - Invalid input: %v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /resources/%d/schedule-overrides - Failed to upsert override: %v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /resources/%d/schedule-overrides/%s - Override saved: override_id=%d",
		resourceID, result.Date, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
