package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travelwise/internal/models/db_models"
	"travelwise/internal/repositories"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

type fakeChatSession struct {
	reply     string
	err       error
	sendCalls int
	prompts   []string
}

func (f *fakeChatSession) Send(ctx context.Context, text string) (string, error) {
	f.sendCalls++
	f.prompts = append(f.prompts, text)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeChatClient struct {
	generate func(prompt string) (string, error)

	session            *fakeChatSession
	startCalls         int
	systemInstructions []string
}

func (f *fakeChatClient) StartSession(ctx context.Context, systemInstruction string) (utils.ChatSessionHandle, error) {
	f.startCalls++
	f.systemInstructions = append(f.systemInstructions, systemInstruction)
	return f.session, nil
}

func (f *fakeChatClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.generate(prompt)
}

func (f *fakeChatClient) Close() error { return nil }

type ChatServiceTestSuite struct {
	suite.Suite
	client   *fakeChatClient
	sessions mem.UserSessionStore
	convos   ConversationServiceInterface
	service  ChatServiceInterface
}

func (s *ChatServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(s.T(), err, "failed to open test database")
	require.NoError(s.T(), db.AutoMigrate(&db_models.Conversation{}))

	s.client = &fakeChatClient{
		generate: func(prompt string) (string, error) { return "yes", nil },
		session:  &fakeChatSession{reply: "Pack layers; spring evenings are chilly."},
	}
	s.sessions = mem.NewUserSessions()
	s.convos = NewConversationService(repositories.NewConversationRepository(db))
	s.service = NewChatService(s.client, s.sessions, s.convos)
}

func (s *ChatServiceTestSuite) TestClassifyFailsClosedOnAdapterError() {
	s.client.generate = func(prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	}

	assert.False(s.T(), s.service.ClassifyIsTravelRelated(context.Background(), "any text at all"))
}

func (s *ChatServiceTestSuite) TestClassifyParsesVerdict() {
	s.client.generate = func(prompt string) (string, error) { return "Yes.", nil }
	assert.True(s.T(), s.service.ClassifyIsTravelRelated(context.Background(), "flights to Tokyo"))

	s.client.generate = func(prompt string) (string, error) { return "no", nil }
	assert.False(s.T(), s.service.ClassifyIsTravelRelated(context.Background(), "solve my homework"))
}

func (s *ChatServiceTestSuite) TestOffTopicGetsCannedReplyWithoutModelTurn() {
	ctx := context.Background()
	s.client.generate = func(prompt string) (string, error) { return "no", nil }

	reply, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "write me a poem about taxes")
	require.NoError(s.T(), err)

	assert.True(s.T(), reply.OffTopic)
	assert.Contains(s.T(), reply.Reply, "travel-related topics")
	assert.Zero(s.T(), s.client.session.sendCalls, "off-topic must not spend a model turn")

	// Off-topic exchanges are never persisted.
	convos, err := s.convos.ListForOwner(ctx, "maria@example.com")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), convos)

	// But they do appear in the running transcript.
	require.Len(s.T(), reply.Transcript, 2)
	assert.Equal(s.T(), "user", reply.Transcript[0].Role)
	assert.Equal(s.T(), "assistant", reply.Transcript[1].Role)
}

func (s *ChatServiceTestSuite) TestOnTopicExchangeIsSaved() {
	ctx := context.Background()

	reply, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "What should I pack?")
	require.NoError(s.T(), err)

	assert.False(s.T(), reply.OffTopic)
	assert.Equal(s.T(), "Pack layers; spring evenings are chilly.", reply.Reply)

	convos, err := s.convos.ListForOwner(ctx, "maria@example.com")
	require.NoError(s.T(), err)
	require.Len(s.T(), convos, 1)
	assert.Equal(s.T(), "Japan — 2026-04-01", convos[0].Name)
	require.Len(s.T(), convos[0].Transcript, 2)
	assert.Equal(s.T(), "What should I pack?", convos[0].Transcript[0].Content)
}

func (s *ChatServiceTestSuite) TestEveryExchangeInsertsANewRow() {
	ctx := context.Background()

	_, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "What should I pack?")
	require.NoError(s.T(), err)
	_, err = s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "Where should I stay?")
	require.NoError(s.T(), err)

	convos, err := s.convos.ListForOwner(ctx, "maria@example.com")
	require.NoError(s.T(), err)
	assert.Len(s.T(), convos, 2, "one save per completed exchange")

	// The newest row carries the full running transcript.
	assert.Len(s.T(), convos[0].Transcript, 4)
}

func (s *ChatServiceTestSuite) TestAdapterErrorIsNotPersisted() {
	ctx := context.Background()
	s.client.session.err = errors.New("model overloaded")

	_, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "What should I pack?")
	assert.ErrorIs(s.T(), err, utils.ErrChatUnavailable)

	convos, listErr := s.convos.ListForOwner(ctx, "maria@example.com")
	require.NoError(s.T(), listErr)
	assert.Empty(s.T(), convos, "errored turns are never persisted")
}

func (s *ChatServiceTestSuite) TestSessionPrimedOnceUntilReset() {
	ctx := context.Background()

	_, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "What should I pack?")
	require.NoError(s.T(), err)
	_, err = s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "Where should I stay?")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 1, s.client.startCalls, "exactly one live session per user")
	require.Len(s.T(), s.client.systemInstructions, 1)
	assert.Contains(s.T(), s.client.systemInstructions[0], "TravelWise")
	assert.Contains(s.T(), s.client.systemInstructions[0], "Japan")

	s.service.ResetSession("maria@example.com")

	_, err = s.service.SendMessage(ctx, "maria@example.com", "Korea", "2026-05-10", "Ideas for Seoul?")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, s.client.startCalls, "reset starts a fresh session")
}

func (s *ChatServiceTestSuite) TestSendIncludesTripContext() {
	ctx := context.Background()

	_, err := s.service.SendMessage(ctx, "maria@example.com", "Japan", "2026-04-01", "What should I pack?")
	require.NoError(s.T(), err)

	require.Len(s.T(), s.client.session.prompts, 1)
	assert.Contains(s.T(), s.client.session.prompts[0], "Planning trip to Japan on 2026-04-01")
}

func (s *ChatServiceTestSuite) TestDescribeDestination() {
	s.client.generate = func(prompt string) (string, error) {
		return "Japan blends ancient temples with neon cities.", nil
	}

	info, err := s.service.DescribeDestination(context.Background(), "Japan")
	require.NoError(s.T(), err)
	assert.Contains(s.T(), info, "Japan")

	s.client.generate = func(prompt string) (string, error) { return "", errors.New("down") }
	_, err = s.service.DescribeDestination(context.Background(), "Japan")
	assert.ErrorIs(s.T(), err, utils.ErrChatUnavailable)
}

func (s *ChatServiceTestSuite) TestTravelTipsLandInTranscript() {
	s.client.generate = func(prompt string) (string, error) {
		return "Book the Shinkansen early!", nil
	}

	tips, err := s.service.SuggestTravelTips(context.Background(), "maria@example.com", "Japan", "2026-04-01")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Book the Shinkansen early!", tips)

	transcript := s.sessions.Get("maria@example.com").Transcript()
	require.Len(s.T(), transcript, 1)
	assert.Equal(s.T(), "assistant", transcript[0].Role)
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
