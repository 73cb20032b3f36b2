package utils

import "errors"

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountNotFound      = errors.New("account not found")
	ErrProtectedAccount     = errors.New("cannot delete the main admin account")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrUnknownCategory      = errors.New("unknown expense category")
	ErrInvalidDuration      = errors.New("trip duration must be between 1 and 30 days")
	ErrInvalidBudget        = errors.New("total budget is below the minimum")
	ErrRateUnavailable      = errors.New("could not fetch the exchange rate")
	ErrChatUnavailable      = errors.New("travel assistant is unavailable")
	ErrDatabaseError        = errors.New("database error")
)
