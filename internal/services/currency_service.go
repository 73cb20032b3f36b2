package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"travelwise/internal/models/response_models"
	"travelwise/pkg/logger"
	"travelwise/pkg/utils"
)

const defaultRateBaseURL = "https://api.exchangerate-api.com/v4/latest"

type CurrencyServiceInterface interface {
	GetRate(ctx context.Context, base, target string) (float64, error)
	Convert(ctx context.Context, base, target string, amount float64) (*response_models.ConversionResponse, error)
}

// ExchangeRateClient wraps the public exchange-rate REST lookup. No retries
// and no caching; every failure mode collapses into ErrRateUnavailable so
// callers can render one warning.
type ExchangeRateClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewExchangeRateClient() *ExchangeRateClient {
	return &ExchangeRateClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultRateBaseURL,
	}
}

// NewExchangeRateClientWithBaseURL points the adapter at a different
// upstream, used by tests.
func NewExchangeRateClientWithBaseURL(baseURL string) *ExchangeRateClient {
	c := NewExchangeRateClient()
	c.baseURL = baseURL
	return c
}

func (c *ExchangeRateClient) GetRate(ctx context.Context, base, target string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, base), nil)
	if err != nil {
		return 0, utils.ErrRateUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Warn("exchange rate lookup failed", logger.Err(err))
		return 0, utils.ErrRateUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		logger.Get().Warn("exchange rate bad status", logger.Err(fmt.Errorf("status %s", resp.Status)))
		return 0, utils.ErrRateUnavailable
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, utils.ErrRateUnavailable
	}

	rate, ok := payload.Rates[target]
	if !ok || rate <= 0 {
		return 0, utils.ErrRateUnavailable
	}
	return rate, nil
}

func (c *ExchangeRateClient) Convert(ctx context.Context, base, target string, amount float64) (*response_models.ConversionResponse, error) {
	rate, err := c.GetRate(ctx, base, target)
	if err != nil {
		return nil, err
	}

	return &response_models.ConversionResponse{
		Base:      base,
		Target:    target,
		Amount:    amount,
		Rate:      rate,
		Converted: amount * rate,
	}, nil
}
