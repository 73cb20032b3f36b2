package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelwise/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Create(user).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := a.db.WithContext(ctx).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByEmail returns the number of removed rows so the caller can tell a
// missing account from a deleted one.
func (a *accountRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := a.db.WithContext(ctx).Delete(&db_models.User{}, "email = ?", email)
	return res.RowsAffected, res.Error
}
