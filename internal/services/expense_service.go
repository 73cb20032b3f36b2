package services

import (
	"time"

	"travelwise/internal/models/response_models"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

// ExpenseCategories is the fixed category set of the budgeting page.
var ExpenseCategories = []string{
	"Flights",
	"Accommodation",
	"Food",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Miscellaneous",
}

type ExpenseServiceInterface interface {
	Add(email string, date time.Time, category string, amount float64) error
	SetLimit(email string, limit float64)
	Summary(email string) response_models.ExpenseSummary
	Clear(email string)
}

type ExpenseService struct {
	sessions mem.UserSessionStore
}

func NewExpenseService(sessions mem.UserSessionStore) ExpenseServiceInterface {
	return &ExpenseService{
		sessions: sessions,
	}
}

func (s *ExpenseService) Add(email string, date time.Time, category string, amount float64) error {
	if amount <= 0 {
		return utils.ErrNonPositiveAmount
	}
	if !validCategory(category) {
		return utils.ErrUnknownCategory
	}

	s.sessions.Get(email).AddExpense(mem.ExpenseEntry{
		Date:     date,
		Category: category,
		Amount:   amount,
	})
	return nil
}

func (s *ExpenseService) SetLimit(email string, limit float64) {
	s.sessions.Get(email).SetLimit(limit)
}

// Summary totals the accepted entries; Remaining is only reported once a
// positive spending limit has been set.
func (s *ExpenseService) Summary(email string) response_models.ExpenseSummary {
	entries, limit := s.sessions.Get(email).Expenses()

	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	summary := response_models.ExpenseSummary{
		Entries:    entries,
		TotalSpent: total,
		Limit:      limit,
	}
	if limit > 0 {
		remaining := limit - total
		summary.Remaining = &remaining
	}
	return summary
}

func (s *ExpenseService) Clear(email string) {
	s.sessions.Get(email).ClearExpenses()
}

func validCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
