package account_fx

import (
	"context"

	"go.uber.org/fx"

	"travelwise/internal/infra"
	"travelwise/internal/repositories"
	"travelwise/internal/services"
	"travelwise/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideAccountRepo, provideAccountService),
	fx.Invoke(ensureSeedAdmin),
)

func provideAccountRepo(db infra.UserDB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db.DB)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func ensureSeedAdmin(accountService services.AccountServiceInterface) {
	if err := accountService.EnsureSeedAdmin(context.Background()); err != nil {
		logger.Get().Fatal("failed to seed admin account", logger.Err(err))
	}
}
