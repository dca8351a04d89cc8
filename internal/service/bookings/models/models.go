package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Response модели

// BookingItemResponse позиция бронирования: активность на наборе ресурсов
type BookingItemResponse struct {
	ActivityID      int64   `json:"activityId"`
	ResourceIDs     []int64 `json:"resourceIds"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64                 `json:"id"`
	CustomerID   *int64                `json:"customerId,omitempty"`
	CustomerName string                `json:"customerName"`
	GroupSize    int                   `json:"groupSize"`
	Status       string                `json:"status"`
	TotalPrice   float64               `json:"totalPrice"`
	Notes        *string               `json:"notes,omitempty"`
	Items        []BookingItemResponse `json:"items"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	items := make([]BookingItemResponse, len(b.Items))
	for i, item := range b.Items {
		items[i] = BookingItemResponse{
			ActivityID:      item.ActivityID,
			ResourceIDs:     item.ResourceIDs,
			Date:            item.Date.Format(domain.DateFormat),
			StartTime:       item.StartTime.String(),
			DurationMinutes: item.DurationMinutes,
		}
	}

	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		GroupSize:    b.GroupSize,
		Status:       string(b.Status),
		TotalPrice:   b.TotalPrice,
		Notes:        b.Notes,
		Items:        items,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
