package db_fx

import (
	"go.uber.org/fx"

	"travelwise/internal/infra"
)

var Module = fx.Provide(
	provideUserDB, provideChatDB)

func provideUserDB() infra.UserDB {
	return infra.InitUserDB()
}

func provideChatDB() infra.ChatDB {
	return infra.InitChatDB()
}
