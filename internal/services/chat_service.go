package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelwise/internal/models/response_models"
	"travelwise/pkg/logger"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

const chatCallTimeout = 30 * time.Second

// offTopicReply is the canned answer shown when the topic filter rejects a
// message; no model turn is spent and nothing is persisted.
const offTopicReply = "I'm your AI Travel Assistant, so I can only help with travel-related topics — " +
	"like trip planning, destinations, budgeting, and experiences. Try asking me about your next adventure!"

type ChatServiceInterface interface {
	ClassifyIsTravelRelated(ctx context.Context, text string) bool
	SendMessage(ctx context.Context, email, destination, tripDate, text string) (*response_models.ChatReply, error)
	DescribeDestination(ctx context.Context, destination string) (string, error)
	SuggestTravelTips(ctx context.Context, email, destination, tripDate string) (string, error)
	ResetSession(email string)
}

type ChatService struct {
	client   utils.ChatClientInterface
	sessions mem.UserSessionStore
	convos   ConversationServiceInterface
}

func NewChatService(
	client utils.ChatClientInterface,
	sessions mem.UserSessionStore,
	convos ConversationServiceInterface,
) ChatServiceInterface {
	return &ChatService{
		client:   client,
		sessions: sessions,
		convos:   convos,
	}
}

// ClassifyIsTravelRelated asks the model for a yes/no verdict. Any adapter
// failure counts as "no": off-topic is the safe answer, never the model turn.
func (s *ChatService) ClassifyIsTravelRelated(ctx context.Context, text string) bool {
	ctx, cancel := context.WithTimeout(ctx, chatCallTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Determine if this message is travel-related. Respond only with "yes" or "no".
Message: %q`, text)

	verdict, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		logger.Get().Warn("topic classification failed, treating as off-topic", logger.Err(err))
		return false
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(verdict)), "yes")
}

func (s *ChatService) SendMessage(ctx context.Context, email, destination, tripDate, text string) (*response_models.ChatReply, error) {
	sess := s.sessions.Get(email)
	sess.AppendTurns(mem.ChatTurn{Role: "user", Content: text})

	if !s.ClassifyIsTravelRelated(ctx, text) {
		sess.AppendTurns(mem.ChatTurn{Role: "assistant", Content: offTopicReply})
		return &response_models.ChatReply{
			Reply:      offTopicReply,
			OffTopic:   true,
			Transcript: sess.Transcript(),
		}, nil
	}

	handle, err := s.liveSession(ctx, sess, destination, tripDate)
	if err != nil {
		return nil, utils.ErrChatUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, chatCallTimeout)
	defer cancel()

	prompt := fmt.Sprintf("%s\n\nContext: Planning trip to %s on %s",
		text, destinationOrDefault(destination), tripDateOrToday(tripDate))
	reply, err := handle.Send(callCtx, prompt)
	if err != nil {
		// The errored turn is surfaced to the user and never persisted.
		logger.Get().Warn("chat turn failed", logger.Err(err))
		return nil, utils.ErrChatUnavailable
	}

	sess.AppendTurns(mem.ChatTurn{Role: "assistant", Content: reply})

	name := fmt.Sprintf("%s — %s", destinationOrDefault(destination), tripDateOrToday(tripDate))
	if _, err := s.convos.Save(ctx, email, name, sess.Transcript()); err != nil {
		return nil, err
	}

	return &response_models.ChatReply{
		Reply:      reply,
		Transcript: sess.Transcript(),
	}, nil
}

func (s *ChatService) DescribeDestination(ctx context.Context, destination string) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", utils.ErrChatUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, chatCallTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Provide a brief overview of %s as a travel destination in 2-3 sentences.
Include key highlights like popular attractions, best time to visit, or cultural aspects.
Keep it concise and engaging.`, destination)

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", utils.ErrChatUnavailable
	}
	return text, nil
}

// SuggestTravelTips generates a conversation starter for the trip and drops
// it into the running transcript as an assistant turn.
func (s *ChatService) SuggestTravelTips(ctx context.Context, email, destination, tripDate string) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", utils.ErrChatUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, chatCallTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Create a brief, friendly greeting for a traveler planning to visit %s on %s.
Suggest 2-3 things they should consider or plan for this trip.
Keep it conversational and helpful, in 3-4 sentences.`, destination, tripDateOrToday(tripDate))

	tips, err := s.client.GenerateText(callCtx, prompt)
	if err != nil {
		return "", utils.ErrChatUnavailable
	}

	s.sessions.Get(email).AppendTurns(mem.ChatTurn{Role: "assistant", Content: tips})
	return tips, nil
}

// ResetSession drops the live model session and transcript; the next message
// primes a fresh one.
func (s *ChatService) ResetSession(email string) {
	s.sessions.Get(email).ResetChat()
}

// liveSession returns the user's ongoing model conversation, priming a new
// one with the system instruction when the session is uninitialized.
func (s *ChatService) liveSession(ctx context.Context, sess *mem.UserSession, destination, tripDate string) (mem.ChatSender, error) {
	if handle := sess.Chat(); handle != nil {
		return handle, nil
	}

	handle, err := s.client.StartSession(ctx, systemInstruction(destination, tripDate))
	if err != nil {
		return nil, err
	}
	return sess.PrimeChat(handle), nil
}

func systemInstruction(destination, tripDate string) string {
	return fmt.Sprintf(`You are TravelWise — a travel assistant AI.
Only discuss travel-related topics:
- Trip planning, itineraries, and destinations
- Budgeting and expenses
- Flights, transportation, and accommodations
- Food, culture, and local activities

Current trip context:
- Destination: %s
- Trip Date: %s

Use this context when relevant to personalize your responses.
If asked something unrelated to travel, politely refuse.`,
		destinationOrNotSpecified(destination), tripDateOrToday(tripDate))
}

func destinationOrDefault(destination string) string {
	if strings.TrimSpace(destination) == "" {
		return "Trip"
	}
	return strings.TrimSpace(destination)
}

func destinationOrNotSpecified(destination string) string {
	if strings.TrimSpace(destination) == "" {
		return "Not specified"
	}
	return strings.TrimSpace(destination)
}

func tripDateOrToday(tripDate string) string {
	if _, err := time.Parse("2006-01-02", tripDate); err != nil {
		return time.Now().Format("2006-01-02")
	}
	return tripDate
}
