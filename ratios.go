package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finbooks/ledger"
	"finbooks/store"
)

// Ratio handler functions

// fetchEntries loads the full classified ledger. Date scoping, where a
// handler needs it, happens in the ledger package.
func fetchEntries(c *gin.Context) ([]ledger.Transaction, bool) {
	entries, err := dataStore.ListEntries(context.Background(), store.TransactionFilter{})
	if err != nil {
		log.Printf("Error fetching ledger entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return nil, false
	}
	return entries, true
}

func respondLedgerError(c *gin.Context, err error) {
	if errors.Is(err, ledger.ErrEmptyLedger) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No transactions found"})
		return
	}
	log.Printf("Error computing ratios: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing ratios"})
}

// @Summary Financial ratios
// @Description Compute the full ratio set over the whole ledger, or over an inclusive date range when start_date and end_date are given
// @Tags ratios
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} ledger.RatioSet "Computed ratios"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No transactions found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/ratios [get]
func getRatios(c *gin.Context) {
	entries, ok := fetchEntries(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" && endDate == "" {
		ratios, err := ledger.ComputeRatios(entries)
		if err != nil {
			respondLedgerError(c, err)
			return
		}
		c.JSON(http.StatusOK, ratios)
		return
	}

	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date must be provided together"})
		return
	}

	from, err := parseDate(startDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	to, err := parseDate(endDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
		return
	}

	ratios, err := ledger.ComputeRatiosForRange(entries, from, to)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratios)
}

// @Summary Month-over-month ratio comparison
// @Description Compute the ratio set for the current calendar month and the previous one
// @Tags ratios
// @Produce json
// @Success 200 {object} ledger.RatioComparison "Current and previous month ratios"
// @Failure 404 {object} map[string]interface{} "No transactions found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/ratios/compare [get]
func compareRatios(c *gin.Context) {
	entries, ok := fetchEntries(c)
	if !ok {
		return
	}

	comparison, err := ledger.CompareRatiosMonthly(entries, time.Now())
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// @Summary Trailing return ratios
// @Description Compute return on assets and return on equity over a trailing window ending now
// @Tags ratios
// @Produce json
// @Param months query int false "Window length in months (default 6)"
// @Success 200 {object} ledger.TrailingReturns "Trailing ROA and ROE"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No transactions found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/ratios/trailing [get]
func getTrailingReturns(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil || months < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months parameter"})
		return
	}

	entries, ok := fetchEntries(c)
	if !ok {
		return
	}

	returns, err := ledger.ComputeRatiosTrailing(entries, months, time.Now())
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, returns)
}
