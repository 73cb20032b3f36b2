package chat_fx

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"

	"travelwise/internal/services"
	"travelwise/pkg/logger"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideChatService)

// ChatConfig holds configuration for generative-chat clients
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	logger.Get().Info(fmt.Sprintf("initializing %s chat client with model %s", config.Provider, config.Model))

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIChatClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideChatService(
	client utils.ChatClientInterface,
	sessions mem.UserSessionStore,
	convos services.ConversationServiceInterface,
) services.ChatServiceInterface {
	return services.NewChatService(client, sessions, convos)
}

// getChatConfig reads configuration from environment variables
func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("CHAT_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			logger.Get().Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GOOGLE_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			logger.Get().Fatal("GOOGLE_API_KEY is required when using the Gemini provider")
		}
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
