package get_fixed_slots

import "time"

// Request модель запроса на получение свободных фиксированных слотов
type Request struct {
	ResourceID int64     // Ресурс с фиксированными слотами
	Date       time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа со свободными каноническими стартами
type Response struct {
	ResourceID int64    `json:"resourceId"`
	Date       string   `json:"date"`  // "2025-10-15"
	Slots      []string `json:"slots"` // ["10:00", "11:00"]
}
