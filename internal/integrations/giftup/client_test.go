package giftup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetGiftCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gift-cards/ABC-123", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "ABC-123",
			"initialValue": 100,
			"remainingValue": 42.5,
			"currency": "GBP",
			"canBeRedeemed": true,
			"hasExpired": false
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, nopLogger{})

	card, err := client.GetGiftCard(context.Background(), "ABC-123")
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", card.Code)
	assert.Equal(t, 42.5, card.RemainingValue)
	assert.Equal(t, "GBP", card.Currency)
	assert.True(t, card.CanBeRedeemed)
	assert.False(t, card.HasExpired)
}

func TestGetGiftCard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, nopLogger{})

	_, err := client.GetGiftCard(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestGetGiftCard_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-key", 5*time.Second, nopLogger{})

	_, err := client.GetGiftCard(context.Background(), "ABC-123")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetGiftCard_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "test-key", time.Second, nopLogger{})

	_, err := client.GetGiftCard(context.Background(), "ABC-123")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetGiftCard_CodeIsEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gift-cards/A%2FB", r.URL.EscapedPath())
		w.Write([]byte(`{"code": "A/B"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, nopLogger{})

	card, err := client.GetGiftCard(context.Background(), "A/B")
	require.NoError(t, err)
	assert.Equal(t, "A/B", card.Code)
}
