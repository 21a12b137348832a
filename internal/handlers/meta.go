// internal/handlers/meta.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

type MetaHandler struct {
	rates refine.RateTable
}

func NewMetaHandler(rates refine.RateTable) *MetaHandler {
	return &MetaHandler{rates: rates}
}

// GET /meta
func (h *MetaHandler) GetMeta(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories":             models.Categories,
		"conditions":             models.Conditions,
		"countries":              models.Countries,
		"currencies":             models.Currencies,
		"items_per_page_options": models.ItemsPerPageOptions,
		"currency_rates":         models.DefaultCurrencyRates,
	})
}

// GET /currency/convert?amount=100&from=EUR&to=USD
//
// An unknown currency code is a degraded display, not a fault: the
// response carries convertible=false and no converted amount.
func (h *MetaHandler) ConvertCurrency(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "0"), 64)
	if err != nil || amount < 0 {
		utils.BadRequestResponse(c, "Invalid amount", nil)
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.BadRequestResponse(c, "Both from and to currency codes are required", nil)
		return
	}

	converted, ok := h.rates.Convert(amount, from, to)
	if !ok {
		utils.SuccessResponse(c, gin.H{
			"convertible": false,
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"convertible": true,
		"amount":      converted,
		"currency":    to,
	})
}
