package request_models

type AllocateRequest struct {
	TotalBudget  float64            `json:"total_budget" binding:"required,gt=0"`
	Allocations  map[string]float64 `json:"allocations" binding:"required"`
	DurationDays int                `json:"duration_days" binding:"required"`
}

type AddExpenseRequest struct {
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount"`
}

type SetLimitRequest struct {
	Limit float64 `json:"limit" binding:"gte=0"`
}
