package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelwise/internal/models/request_models"
	"travelwise/internal/services"
	"travelwise/pkg/utils"
)

type BudgetController struct {
	budgetService  services.BudgetServiceInterface
	expenseService services.ExpenseServiceInterface
}

func NewBudgetController(
	budgetService services.BudgetServiceInterface,
	expenseService services.ExpenseServiceInterface,
) *BudgetController {
	return &BudgetController{
		budgetService:  budgetService,
		expenseService: expenseService,
	}
}

// Allocate godoc
// @Summary Compute a budget allocation plan
// @Description Per-category shares, totals, remainder and daily allowance for a trip
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body request_models.AllocateRequest true "Allocation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /budget/allocate [post]
func (b *BudgetController) Allocate(c *gin.Context) {
	var req request_models.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := b.budgetService.Allocate(req.TotalBudget, req.Allocations, req.DurationDays)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Budget plan computed")
}

// AddExpense godoc
// @Summary Add an expense to the session ledger
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body request_models.AddExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [post]
func (b *BudgetController) AddExpense(c *gin.Context) {
	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	email := c.GetString("user_email")
	if err := b.expenseService.Add(email, date, req.Category, req.Amount); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense added")
}

// SetLimit godoc
// @Summary Set the total spending limit for the session ledger
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body request_models.SetLimitRequest true "Limit payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/limit [put]
func (b *BudgetController) SetLimit(c *gin.Context) {
	var req request_models.SetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := c.GetString("user_email")
	b.expenseService.SetLimit(email, req.Limit)

	utils.RespondSuccess(c, nil, "Spending limit updated")
}

// ExpenseSummary godoc
// @Summary Ledger entries, total spent and remaining budget
// @Tags Budget
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/summary [get]
func (b *BudgetController) ExpenseSummary(c *gin.Context) {
	email := c.GetString("user_email")
	summary := b.expenseService.Summary(email)
	utils.RespondSuccess(c, summary, "")
}

// ClearExpenses godoc
// @Summary Empty the session ledger
// @Tags Budget
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [delete]
func (b *BudgetController) ClearExpenses(c *gin.Context) {
	email := c.GetString("user_email")
	b.expenseService.Clear(email)
	utils.RespondSuccess(c, nil, "All expense data cleared")
}
