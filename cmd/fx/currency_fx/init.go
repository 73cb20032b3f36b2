package currency_fx

import (
	"go.uber.org/fx"

	"travelwise/internal/services"
)

var Module = fx.Provide(
	provideCurrencyService)

func provideCurrencyService() services.CurrencyServiceInterface {
	return services.NewExchangeRateClient()
}
