package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finbooks/ledger"
)

// Balance handler functions

// @Summary Balance sheet
// @Description Build the balance sheet: categories grouped into asset, liability and equity sections with per-section and grand totals
// @Tags balances
// @Produce json
// @Success 200 {object} ledger.BalanceSheet "Balance sheet"
// @Failure 404 {object} map[string]interface{} "No transactions found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balance-sheet [get]
func getBalanceSheet(c *gin.Context) {
	entries, ok := fetchEntries(c)
	if !ok {
		return
	}

	sheet, err := ledger.ComputeBalanceSheet(entries)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// aggregateBalances runs a grouped aggregation over the classified entries
// honoring the shared filter parameters, rounding each bucket.
func aggregateBalances(c *gin.Context, by ledger.GroupBy) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	entries, ok := fetchEntries(c)
	if !ok {
		return
	}

	lf := ledger.Filter{From: filter.From, To: filter.To, CategoryID: filter.CategoryID}
	balances := ledger.Aggregate(entries, by, lf)

	rounded := make(map[string]float64, len(balances))
	for name, amount := range balances {
		rounded[name], _ = decimal.NewFromFloat(amount).Round(2).Float64()
	}
	c.JSON(http.StatusOK, rounded)
}

// @Summary Balances by category
// @Description Sum classified transactions grouped by main category
// @Tags balances
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} map[string]float64 "Balance per main category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balances/categories [get]
func getCategoryBalances(c *gin.Context) {
	aggregateBalances(c, ledger.ByMainCategory)
}

// @Summary Balances by subcategory
// @Description Sum classified transactions grouped by subcategory
// @Tags balances
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} map[string]float64 "Balance per subcategory"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balances/subcategories [get]
func getSubcategoryBalances(c *gin.Context) {
	aggregateBalances(c, ledger.BySubcategory)
}

// @Summary Balances by transaction type
// @Description Sum classified transactions grouped by Credit and Debit
// @Tags balances
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} map[string]float64 "Balance per transaction type"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balances/types [get]
func getTypeBalances(c *gin.Context) {
	aggregateBalances(c, ledger.ByType)
}

// @Summary Balances by statement section
// @Description Sum classified transactions grouped by the combined main category and category type
// @Tags balances
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} map[string]float64 "Balance per section"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/balances/sections [get]
func getSectionBalances(c *gin.Context) {
	aggregateBalances(c, ledger.BySection)
}
