package controllers_fx

import (
	"go.uber.org/fx"

	"travelwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewCurrencyController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewConversationController))
