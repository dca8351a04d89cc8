package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request модели

// CreateClosureRequest запрос на закрытие даты для всего заведения
type CreateClosureRequest struct {
	Date   time.Time
	Reason *string
}

// ToDomainClosure конвертирует request в domain модель
func (r *CreateClosureRequest) ToDomainClosure() *domain.Closure {
	return &domain.Closure{
		Date:   r.Date,
		Reason: r.Reason,
	}
}

// UpsertOverrideRequest запрос на переопределение фиксированных слотов
// для пары (ресурс, дата)
type UpsertOverrideRequest struct {
	ResourceID     int64
	Date           time.Time
	FixedTimeSlots []types.TimeString
}

// ToDomainOverride конвертирует request в domain модель
func (r *UpsertOverrideRequest) ToDomainOverride() *domain.ScheduleOverride {
	return &domain.ScheduleOverride{
		ResourceID:     r.ResourceID,
		Date:           r.Date,
		FixedTimeSlots: r.FixedTimeSlots,
	}
}

// Response модели

// ClosureResponse ответ с данными закрытия
type ClosureResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"` // "2025-10-15"
	Reason *string `json:"reason,omitempty"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// OverrideResponse ответ с данными переопределения расписания
type OverrideResponse struct {
	ID             int64    `json:"id"`
	ResourceID     int64    `json:"resourceId"`
	Date           string   `json:"date"`           // "2025-10-15"
	FixedTimeSlots []string `json:"fixedTimeSlots"` // ["10:00", "11:00"]
}

// OverrideListResponse ответ со списком переопределений
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// Методы конвертации

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		ID:     c.ID,
		Date:   c.Date.Format(domain.DateFormat),
		Reason: c.Reason,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	resp := &ClosureListResponse{
		Closures: make([]ClosureResponse, 0, len(closures)),
	}

	for _, closure := range closures {
		if closureResp := FromDomainClosure(closure); closureResp != nil {
			resp.Closures = append(resp.Closures, *closureResp)
		}
	}

	return resp
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.ScheduleOverride) *OverrideResponse {
	if o == nil {
		return nil
	}

	slots := make([]string, len(o.FixedTimeSlots))
	for i, slot := range o.FixedTimeSlots {
		slots[i] = slot.String()
	}

	return &OverrideResponse{
		ID:             o.ID,
		ResourceID:     o.ResourceID,
		Date:           o.Date.Format(domain.DateFormat),
		FixedTimeSlots: slots,
	}
}

// FromDomainOverrideList конвертирует список domain моделей в DTO
func FromDomainOverrideList(overrides []*domain.ScheduleOverride) *OverrideListResponse {
	resp := &OverrideListResponse{
		Overrides: make([]OverrideResponse, 0, len(overrides)),
	}

	for _, override := range overrides {
		if overrideResp := FromDomainOverride(override); overrideResp != nil {
			resp.Overrides = append(resp.Overrides, *overrideResp)
		}
	}

	return resp
}
