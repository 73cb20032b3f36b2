package services

import (
	"context"
	"errors"
	"os"

	"gorm.io/gorm"

	"travelwise/internal/models/db_models"
	"travelwise/internal/models/request_models"
	"travelwise/internal/models/response_models"
	"travelwise/internal/repositories"
	"travelwise/pkg/logger"
	"travelwise/pkg/utils"
)

// SeedAdminEmail is the distinguished admin account that can never be deleted.
const SeedAdminEmail = "admin@travelwise.com"

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAllAccounts(ctx context.Context) ([]response_models.UserResponse, error)
	DeleteAccount(ctx context.Context, email string) error
	EnsureSeedAdmin(ctx context.Context) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password answer identically so login failures
	// cannot be used to enumerate accounts.
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.Email, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  toUserResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Country:      request.Country,
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.Insert(ctx, newUser); err != nil {
		// Concurrent signups race past the check above; the unique constraint
		// decides the winner and the loser still sees a duplicate-email error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return account != nil, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.UserResponse, error) {
	accounts, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toUserResponse(&accounts[i]))
	}
	return out, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, email string) error {
	if email == SeedAdminEmail {
		return utils.ErrProtectedAccount
	}

	rows, err := a.accountRepo.DeleteByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}

// EnsureSeedAdmin inserts the distinguished admin account on first start.
func (a *AccountService) EnsureSeedAdmin(ctx context.Context) error {
	existing, err := a.accountRepo.FindByEmail(ctx, SeedAdminEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme-admin"
		logger.Get().Warn("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	admin := &db_models.User{
		Email:        SeedAdminEmail,
		PasswordHash: hashed,
		FirstName:    "TravelWise",
		LastName:     "Admin",
		Country:      "Philippines",
		Role:         db_models.RoleAdmin,
	}

	if err := a.accountRepo.Insert(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func toUserResponse(u *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
		Role:      u.Role,
	}
}
