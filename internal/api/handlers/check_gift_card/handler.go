package check_gift_card

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/integrations/giftup"
)

const (
	msgMissingCode    = "требуется код подарочной карты"
	msgCardNotFound   = "подарочная карта не найдена"
	msgGiftUpDegraded = "сервис подарочных карт временно недоступен"
)

type Handler struct {
	client GiftCardClient
	logger Logger
}

func NewHandler(client GiftCardClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/gift-cards/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		h.logger.Warn("GET /gift-cards/{code} - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	card, err := h.client.GetGiftCard(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, giftup.ErrCardNotFound):
			h.logger.Warn("GET /gift-cards - Card not found")
			handlers.RespondNotFound(w, msgCardNotFound)

		case errors.Is(err, giftup.ErrUnavailable):
			h.logger.Error("GET /gift-cards - GiftUp unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgGiftUpDegraded)

		default:
			h.logger.Error("GET /gift-cards - Failed to get gift card: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, card)
}
