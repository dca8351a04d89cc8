package giftup

import "errors"

var (
	// ErrCardNotFound возвращается, когда подарочная карта не найдена
	ErrCardNotFound = errors.New("gift card not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("giftup client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("giftup client: invalid response")

	// ErrUnavailable возвращается, когда сервис подарочных карт недоступен
	// Оформление бронирования при этом продолжается без карты
	ErrUnavailable = errors.New("giftup service unavailable")
)
