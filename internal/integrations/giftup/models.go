package giftup

// GiftCard модель подарочной карты из GiftUp
type GiftCard struct {
	Code           string  `json:"code"`
	InitialValue   float64 `json:"initialValue"`
	RemainingValue float64 `json:"remainingValue"`
	Currency       string  `json:"currency"`
	CanBeRedeemed  bool    `json:"canBeRedeemed"`
	HasExpired     bool    `json:"hasExpired"`
	ExpiresOn      *string `json:"expiresOn,omitempty"`
}

// ErrorResponse модель ошибки от GiftUp
type ErrorResponse struct {
	Message string `json:"message"`
}
