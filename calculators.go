package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finbooks/tax"
)

// Calculator handler functions

// @Summary Calculate state income tax
// @Description Compute the income tax owed for a US state. State matching is case-insensitive. The tax amount is returned as a string rounded to two decimal places.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body TaxRequest true "State and income"
// @Success 200 {object} TaxResponse "Computed tax"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "State not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/calculate-tax [post]
func calculateTax(c *gin.Context) {
	var request TaxRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	income, err := parseIncome(request.Income)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := tax.Compute(request.State, income)
	if err != nil {
		if errors.Is(err, tax.ErrUnknownJurisdiction) {
			c.JSON(http.StatusNotFound, gin.H{"error": "State not found."})
			return
		}
		if errors.Is(err, tax.ErrInvalidIncome) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid income."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating tax"})
		return
	}

	c.JSON(http.StatusOK, TaxResponse{
		Tax:    amount.StringFixed(2),
		State:  request.State,
		Income: income,
	})
}

// @Summary List tax jurisdictions
// @Description List the state names the tax calculator recognizes
// @Tags calculators
// @Produce json
// @Success 200 {object} map[string]interface{} "Sorted state names"
// @Router /api/tax/jurisdictions [get]
func listJurisdictions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jurisdictions": tax.Jurisdictions()})
}

// @Summary Straight-line depreciation
// @Description Compute annual straight-line depreciation: (cost - salvage) / useful life
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body DepreciationRequest true "Asset cost, salvage value and useful life in years"
// @Success 200 {object} DepreciationResponse "Annual depreciation"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/depreciation/straight-line [post]
func straightLineDepreciation(c *gin.Context) {
	var request DepreciationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.UsefulLife <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "useful_life must be greater than zero"})
		return
	}
	if request.Salvage > request.Cost {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salvage must not exceed cost"})
		return
	}

	annual := (request.Cost - request.Salvage) / request.UsefulLife
	c.JSON(http.StatusOK, DepreciationResponse{
		AnnualDepreciation: decimal.NewFromFloat(annual).Round(2).StringFixed(2),
	})
}
