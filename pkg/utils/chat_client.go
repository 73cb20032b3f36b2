package utils

import "context"

// ChatSessionHandle is an ongoing model conversation. The session carries its own
// running context; Send appends the user turn and returns the assistant reply.
type ChatSessionHandle interface {
	Send(ctx context.Context, text string) (string, error)
}

// ChatClientInterface abstracts the generative-chat provider. StartSession primes
// a conversation with a system instruction before any user message is sent;
// GenerateText is a single-shot prompt independent of any session.
type ChatClientInterface interface {
	StartSession(ctx context.Context, systemInstruction string) (ChatSessionHandle, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}
