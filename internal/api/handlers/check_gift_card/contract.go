package check_gift_card

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/integrations/giftup"
)

type GiftCardClient interface {
	GetGiftCard(ctx context.Context, code string) (*giftup.GiftCard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
