package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"travelwise/internal/services"
	"travelwise/pkg/utils"
)

type CurrencyController struct {
	currencyService services.CurrencyServiceInterface
}

func NewCurrencyController(currencyService services.CurrencyServiceInterface) *CurrencyController {
	return &CurrencyController{
		currencyService: currencyService,
	}
}

// Convert godoc
// @Summary Convert an amount between currencies using live rates
// @Tags Currency
// @Produce json
// @Param from query string true "Base currency code"
// @Param to query string true "Target currency code"
// @Param amount query number false "Amount to convert" default(1)
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /currency/convert [get]
func (cc *CurrencyController) Convert(c *gin.Context) {
	base := strings.ToUpper(c.Query("from"))
	target := strings.ToUpper(c.Query("to"))
	if base == "" || target == "" {
		utils.RespondError(c, http.StatusBadRequest, "Both 'from' and 'to' currency codes are required")
		return
	}

	amountStr := c.DefaultQuery("amount", "1")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	conversion, err := cc.currencyService.Convert(c.Request.Context(), base, target, amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conversion, "Conversion successful")
}
