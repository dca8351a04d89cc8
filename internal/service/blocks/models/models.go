package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request модели

// CreateBlockRequest запрос на блокировку ресурса
type CreateBlockRequest struct {
	ResourceID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Reason          string
}

// ToDomainBlock конвертирует request в domain модель
func (r *CreateBlockRequest) ToDomainBlock() *domain.Block {
	return &domain.Block{
		ResourceID:      r.ResourceID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
	}
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID              int64     `json:"id"`
	ResourceID      int64     `json:"resourceId"`
	Date            string    `json:"date"`      // "2025-10-15"
	StartTime       string    `json:"startTime"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.Block) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Reason:          b.Reason,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}

	for _, block := range blocks {
		if blockResp := FromDomainBlock(block); blockResp != nil {
			resp.Blocks = append(resp.Blocks, *blockResp)
		}
	}

	return resp
}
