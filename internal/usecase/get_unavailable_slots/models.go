package get_unavailable_slots

import "time"

// Request модель запроса на расчёт недоступных интервалов
type Request struct {
	Date time.Time // Дата, на которую считается недоступность
}

// SlotResponse один производный недоступный интервал на ресурсе
type SlotResponse struct {
	ResourceID      int64  `json:"resourceId"`
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// Response модель ответа с недоступными интервалами
type Response struct {
	Date  string         `json:"date"` // "2025-10-15"
	Slots []SlotResponse `json:"slots"`
}
