package response_models

import (
	mem "travelwise/pkg/memcache"
)

// ExpenseSummary mirrors the budget page: Remaining is only present once a
// spending limit has been set.
type ExpenseSummary struct {
	Entries    []mem.ExpenseEntry `json:"entries"`
	TotalSpent float64            `json:"total_spent"`
	Limit      float64            `json:"limit,omitempty"`
	Remaining  *float64           `json:"remaining,omitempty"`
}
