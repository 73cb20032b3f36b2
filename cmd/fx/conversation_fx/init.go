package conversation_fx

import (
	"go.uber.org/fx"

	"travelwise/internal/infra"
	"travelwise/internal/repositories"
	"travelwise/internal/services"
)

var Module = fx.Provide(
	provideConversationRepo, provideConversationService)

func provideConversationRepo(db infra.ChatDB) repositories.ConversationRepository {
	return repositories.NewConversationRepository(db.DB)
}

func provideConversationService(convoRepo repositories.ConversationRepository) services.ConversationServiceInterface {
	return services.NewConversationService(convoRepo)
}
