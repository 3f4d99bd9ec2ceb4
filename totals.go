package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Period totals
// @Description Sum credits and debits over an optional date range, with the net difference
// @Tags totals
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} store.Totals "Income, expense and net totals"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/totals [get]
func getTotals(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	totals, err := dataStore.Totals(context.Background(), filter)
	if err != nil {
		log.Printf("Error calculating totals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}
