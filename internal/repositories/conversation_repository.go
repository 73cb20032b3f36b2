package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelwise/internal/models/db_models"
)

type ConversationRepository interface {
	Insert(ctx context.Context, convo *db_models.Conversation) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]db_models.Conversation, error)
	DeleteByIDAndOwner(ctx context.Context, id uint, ownerEmail string) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

func (r *conversationRepository) Insert(ctx context.Context, convo *db_models.Conversation) error {
	return r.db.WithContext(ctx).Create(convo).Error
}

func (r *conversationRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]db_models.Conversation, error) {
	var convos []db_models.Conversation
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("id DESC").
		Find(&convos).Error
	if err != nil {
		return nil, err
	}
	return convos, nil
}

// DeleteByIDAndOwner filters on both fields so a user can never delete
// another user's conversation; zero rows means no matching pair.
func (r *conversationRepository) DeleteByIDAndOwner(ctx context.Context, id uint, ownerEmail string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		Delete(&db_models.Conversation{})
	return res.RowsAffected, res.Error
}
