package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"finbooks/store"
)

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateTransactionType checks that a transaction type is Credit or Debit
func validateTransactionType(t string) error {
	if t != "Credit" && t != "Debit" {
		return fmt.Errorf("type must be Credit or Debit")
	}
	return nil
}

// validateMainCategory checks that a category belongs to a known section
func validateMainCategory(mc string) error {
	switch mc {
	case "Asset", "Liability", "Equity", "Revenue", "COGS", "Expense", "Assets", "Liabilities":
		return nil
	}
	return fmt.Errorf("unknown main category: %s", mc)
}

// parseIncome accepts the loosely typed income field of a tax request. JSON
// numbers decode as float64; numeric strings are parsed; anything else is
// rejected.
func parseIncome(v interface{}) (float64, error) {
	switch income := v.(type) {
	case float64:
		return income, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(income), 64)
		if err != nil {
			return 0, fmt.Errorf("income must be a number")
		}
		return parsed, nil
	case nil:
		return 0, fmt.Errorf("income is required")
	default:
		return 0, fmt.Errorf("income must be a number")
	}
}

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// handleStoreError converts storage errors to appropriate HTTP responses
func handleStoreError(err error) (statusCode int, message string) {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, "Resource not found"
	}

	errorStr := err.Error()

	// Check for unique constraint violations
	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		if strings.Contains(errorStr, "categories_name_key") {
			return http.StatusConflict, "Category with this name already exists"
		}
		return http.StatusConflict, "Resource already exists"
	}

	// Check for not found errors
	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}
