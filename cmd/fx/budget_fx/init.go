package budget_fx

import (
	"go.uber.org/fx"

	"travelwise/internal/services"
	mem "travelwise/pkg/memcache"
)

var Module = fx.Provide(
	provideBudgetService, provideExpenseService)

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func provideExpenseService(sessions mem.UserSessionStore) services.ExpenseServiceInterface {
	return services.NewExpenseService(sessions)
}
