package services

import (
	"context"
	"encoding/json"

	"travelwise/internal/models/db_models"
	"travelwise/internal/models/response_models"
	"travelwise/internal/repositories"
	"travelwise/pkg/logger"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

type ConversationServiceInterface interface {
	Save(ctx context.Context, ownerEmail, name string, transcript []mem.ChatTurn) (uint, error)
	ListForOwner(ctx context.Context, ownerEmail string) ([]response_models.ConversationResponse, error)
	Delete(ctx context.Context, id uint, ownerEmail string) error
}

type ConversationService struct {
	convoRepo repositories.ConversationRepository
}

func NewConversationService(convoRepo repositories.ConversationRepository) ConversationServiceInterface {
	return &ConversationService{
		convoRepo: convoRepo,
	}
}

// Save always inserts a new row: the history is an append-only log, one row
// per completed exchange, even for the same logical trip.
func (s *ConversationService) Save(ctx context.Context, ownerEmail, name string, transcript []mem.ChatTurn) (uint, error) {
	raw, err := json.Marshal(transcript)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	convo := &db_models.Conversation{
		OwnerEmail: ownerEmail,
		Name:       name,
		Transcript: string(raw),
	}

	if err := s.convoRepo.Insert(ctx, convo); err != nil {
		return 0, utils.ErrDatabaseError
	}
	return convo.ID, nil
}

func (s *ConversationService) ListForOwner(ctx context.Context, ownerEmail string) ([]response_models.ConversationResponse, error) {
	convos, err := s.convoRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ConversationResponse, 0, len(convos))
	for _, c := range convos {
		var transcript []mem.ChatTurn
		if err := json.Unmarshal([]byte(c.Transcript), &transcript); err != nil {
			logger.Get().Warn("skipping conversation with malformed transcript", logger.Err(err))
			continue
		}
		out = append(out, response_models.ConversationResponse{
			ID:         c.ID,
			Name:       c.Name,
			Transcript: transcript,
		})
	}
	return out, nil
}

func (s *ConversationService) Delete(ctx context.Context, id uint, ownerEmail string) error {
	rows, err := s.convoRepo.DeleteByIDAndOwner(ctx, id, ownerEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrConversationNotFound
	}
	return nil
}
