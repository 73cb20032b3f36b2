package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient implements ChatClientInterface using the OpenAI chat API
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) ChatClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// openaiChatSession accumulates the running message history; the system
// instruction is the first message and every exchange appends two more.
type openaiChatSession struct {
	client   *openai.Client
	model    string
	messages []openai.ChatCompletionMessage
}

func (c *OpenAIChatClient) StartSession(ctx context.Context, systemInstruction string) (ChatSessionHandle, error) {
	return &openaiChatSession{
		client: c.client,
		model:  c.model,
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		},
	}, nil
}

func (s *openaiChatSession) Send(ctx context.Context, text string) (string, error) {
	attempt := append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: attempt,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)

	// Only commit the turn to the running context once it succeeded.
	s.messages = append(attempt, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})

	return reply, nil
}

func (c *OpenAIChatClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIChatClient) Close() error {
	return nil
}
