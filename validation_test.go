package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"finbooks/store"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("Cash"))
	assert.NoError(t, validateName("  Cash  "))
	assert.Error(t, validateName(""))
	assert.Error(t, validateName("   "))
}

func TestValidateTransactionType(t *testing.T) {
	assert.NoError(t, validateTransactionType("Credit"))
	assert.NoError(t, validateTransactionType("Debit"))
	assert.Error(t, validateTransactionType("credit"))
	assert.Error(t, validateTransactionType("Transfer"))
	assert.Error(t, validateTransactionType(""))
}

func TestValidateMainCategory(t *testing.T) {
	for _, label := range []string{"Asset", "Liability", "Equity", "Revenue", "COGS", "Expense", "Assets", "Liabilities"} {
		assert.NoError(t, validateMainCategory(label))
	}
	assert.Error(t, validateMainCategory("asset"))
	assert.Error(t, validateMainCategory("Income"))
}

func TestParseIncome(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		income, err := parseIncome(float64(50000))
		assert.NoError(t, err)
		assert.Equal(t, 50000.0, income)
	})

	t.Run("string", func(t *testing.T) {
		income, err := parseIncome("  50000.50 ")
		assert.NoError(t, err)
		assert.Equal(t, 50000.50, income)
	})

	t.Run("negative", func(t *testing.T) {
		income, err := parseIncome(float64(-1200))
		assert.NoError(t, err)
		assert.Equal(t, -1200.0, income)
	})

	t.Run("non numeric string", func(t *testing.T) {
		_, err := parseIncome("plenty")
		assert.Error(t, err)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := parseIncome(nil)
		assert.Error(t, err)
	})

	t.Run("bool", func(t *testing.T) {
		_, err := parseIncome(true)
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = parseDate("15/03/2025")
	assert.Error(t, err)
}

func TestHandleStoreError(t *testing.T) {
	status, _ := handleStoreError(store.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = handleStoreError(fmt.Errorf("wrapped: %w", store.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, status)

	status, message := handleStoreError(errors.New(`duplicate key value violates unique constraint "categories_name_key"`))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Category with this name already exists", message)

	status, _ = handleStoreError(errors.New("no rows in result set"))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = handleStoreError(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
}
