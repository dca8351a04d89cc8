package update_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	updateBooking "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingItemRequest HTTP модель позиции бронирования
type BookingItemRequest struct {
	ActivityID      int64   `json:"activityId"`
	ResourceIDs     []int64 `json:"resourceIds"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerID   *int64               `json:"customerId,omitempty"`
	CustomerName string               `json:"customerName,omitempty"`
	GroupSize    int                  `json:"groupSize,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	Items        []BookingItemRequest `json:"items"`
}

// BookingItemResponse HTTP модель позиции обновленного бронирования
type BookingItemResponse struct {
	ActivityID      int64   `json:"activityId"`
	ResourceIDs     []int64 `json:"resourceIds"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64                 `json:"id"`
	CustomerID   *int64                `json:"customerId,omitempty"`
	CustomerName string                `json:"customerName"`
	GroupSize    int                   `json:"groupSize"`
	Status       string                `json:"status"`
	TotalPrice   float64               `json:"totalPrice"`
	Notes        *string               `json:"notes,omitempty"`
	Items        []BookingItemResponse `json:"items"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	items := make([]updateBooking.ItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		date, err := time.Parse(domain.DateFormat, item.Date)
		if err != nil {
			return nil, err
		}

		startTime, err := types.NewTimeStringFromString(item.StartTime)
		if err != nil {
			return nil, err
		}

		items = append(items, updateBooking.ItemRequest{
			ActivityID:      item.ActivityID,
			ResourceIDs:     item.ResourceIDs,
			Date:            date,
			StartTime:       startTime,
			DurationMinutes: item.DurationMinutes,
		})
	}

	return &updateBooking.Request{
		BookingID:    bookingID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		GroupSize:    r.GroupSize,
		Notes:        r.Notes,
		Items:        items,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	items := make([]BookingItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = BookingItemResponse{
			ActivityID:      item.ActivityID,
			ResourceIDs:     item.ResourceIDs,
			Date:            item.Date,
			StartTime:       item.StartTime,
			DurationMinutes: item.DurationMinutes,
		}
	}

	return &BookingResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		CustomerName: resp.CustomerName,
		GroupSize:    resp.GroupSize,
		Status:       resp.Status,
		TotalPrice:   resp.TotalPrice,
		Notes:        resp.Notes,
		Items:        items,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
