package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelwise/pkg/utils"
)

func rateServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetRateReturnsUpstreamRate(t *testing.T) {
	srv := rateServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"PHP":56.12,"EUR":0.92}}`))
	})

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	rate, err := client.GetRate(context.Background(), "USD", "PHP")
	require.NoError(t, err)
	assert.Equal(t, 56.12, rate)
}

func TestGetRateMissingTargetCodeIsUnavailable(t *testing.T) {
	srv := rateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	})

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	_, err := client.GetRate(context.Background(), "USD", "PHP")
	assert.ErrorIs(t, err, utils.ErrRateUnavailable)
}

func TestGetRateUpstreamErrorIsUnavailable(t *testing.T) {
	srv := rateServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	_, err := client.GetRate(context.Background(), "USD", "PHP")
	assert.ErrorIs(t, err, utils.ErrRateUnavailable)
}

func TestGetRateNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	_, err := client.GetRate(context.Background(), "USD", "PHP")
	assert.ErrorIs(t, err, utils.ErrRateUnavailable)
}

func TestGetRateMalformedBodyIsUnavailable(t *testing.T) {
	srv := rateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	_, err := client.GetRate(context.Background(), "USD", "PHP")
	assert.ErrorIs(t, err, utils.ErrRateUnavailable)
}

func TestConvertMultipliesByRate(t *testing.T) {
	srv := rateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"PHP":56.0}}`))
	})

	client := NewExchangeRateClientWithBaseURL(srv.URL)
	conv, err := client.Convert(context.Background(), "USD", "PHP", 2.5)
	require.NoError(t, err)

	assert.Equal(t, 56.0, conv.Rate)
	assert.Equal(t, 140.0, conv.Converted)
	assert.Equal(t, "USD", conv.Base)
	assert.Equal(t, "PHP", conv.Target)
}
