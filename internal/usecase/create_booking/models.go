package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// ItemRequest одна позиция бронирования
type ItemRequest struct {
	ActivityID      int64            // ID активности
	ResourceIDs     []int64          // Ресурсы, занимаемые вместе
	Date            time.Time        // Дата позиции (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность; для fixed time может быть опущена
}

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   *int64        // ID клиента (nil для walk-in)
	CustomerName string        // Имя клиента; пустое - walk-in
	GroupSize    int           // Размер группы; 0 - по умолчанию 1
	Notes        *string       // Заметки (опционально)
	Items        []ItemRequest // Позиции бронирования
}

// ItemResponse одна позиция созданного бронирования
type ItemResponse struct {
	ActivityID      int64   `json:"activityId"`
	ResourceIDs     []int64 `json:"resourceIds"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64          `json:"id"`
	CustomerID   *int64         `json:"customerId,omitempty"`
	CustomerName string         `json:"customerName"`
	GroupSize    int            `json:"groupSize"`
	Status       string         `json:"status"`
	TotalPrice   float64        `json:"totalPrice"`
	Notes        *string        `json:"notes,omitempty"`
	Items        []ItemResponse `json:"items"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// toResponse конвертирует domain модель в response
func toResponse(b *domain.Booking) *Response {
	items := make([]ItemResponse, len(b.Items))
	for i, item := range b.Items {
		items[i] = ItemResponse{
			ActivityID:      item.ActivityID,
			ResourceIDs:     item.ResourceIDs,
			Date:            item.Date.Format(domain.DateFormat),
			StartTime:       item.StartTime.String(),
			DurationMinutes: item.DurationMinutes,
		}
	}

	return &Response{
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
