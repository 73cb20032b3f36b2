package services

import (
	"math"
	"sort"

	"travelwise/internal/models/response_models"
	"travelwise/pkg/utils"
)

const (
	// MinimumBudget matches the smallest total the plan creator accepts.
	MinimumBudget = 1000

	lowAllowanceThreshold      = 2000
	generousAllowanceThreshold = 5000
)

const (
	TierLow      = "low"
	TierBalanced = "balanced"
	TierGenerous = "generous"
)

type BudgetServiceInterface interface {
	Allocate(totalBudget float64, allocations map[string]float64, durationDays int) (*response_models.BudgetPlan, error)
}

type BudgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &BudgetService{}
}

// Allocate is a pure function of its inputs; nothing here is persisted and
// the plan is recomputed from scratch on every change.
func (s *BudgetService) Allocate(totalBudget float64, allocations map[string]float64, durationDays int) (*response_models.BudgetPlan, error) {
	if durationDays < 1 || durationDays > 30 {
		return nil, utils.ErrInvalidDuration
	}
	if totalBudget < MinimumBudget {
		return nil, utils.ErrInvalidBudget
	}

	categories := make([]string, 0, len(allocations))
	for c := range allocations {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var totalAllocated float64
	rows := make([]response_models.CategoryAllocation, 0, len(categories))
	for _, c := range categories {
		amount := allocations[c]
		row := response_models.CategoryAllocation{
			Category: c,
			Amount:   amount,
		}
		if totalBudget > 0 {
			row.Percentage = math.Round(amount/totalBudget*1000) / 10
		}
		rows = append(rows, row)
		totalAllocated += amount
	}

	remaining := totalBudget - totalAllocated
	dailyAllowance := totalBudget / float64(durationDays)

	return &response_models.BudgetPlan{
		TotalBudget:    totalBudget,
		DurationDays:   durationDays,
		Allocations:    rows,
		TotalAllocated: totalAllocated,
		Remaining:      remaining,
		OverBudget:     remaining < 0,
		DailyAllowance: dailyAllowance,
		AllowanceTier:  allowanceTier(dailyAllowance),
	}, nil
}

func allowanceTier(dailyAllowance float64) string {
	switch {
	case dailyAllowance < lowAllowanceThreshold:
		return TierLow
	case dailyAllowance > generousAllowanceThreshold:
		return TierGenerous
	default:
		return TierBalanced
	}
}
