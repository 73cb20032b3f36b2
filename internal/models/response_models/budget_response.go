package response_models

// CategoryAllocation is one row of the allocation summary; Percentage is only
// meaningful when the total budget is non-zero.
type CategoryAllocation struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage,omitempty"`
}

type BudgetPlan struct {
	TotalBudget    float64              `json:"total_budget"`
	DurationDays   int                  `json:"duration_days"`
	Allocations    []CategoryAllocation `json:"allocations"`
	TotalAllocated float64              `json:"total_allocated"`
	Remaining      float64              `json:"remaining"`
	OverBudget     bool                 `json:"over_budget"`
	DailyAllowance float64              `json:"daily_allowance"`
	AllowanceTier  string               `json:"allowance_tier"`
}
