package main

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finbooks/store"
)

// Transaction handler functions

// parseTransactionFilter reads the shared list/aggregation query parameters.
func parseTransactionFilter(c *gin.Context) (store.TransactionFilter, error) {
	var f store.TransactionFilter

	if v := c.Query("start_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			return f, err
		}
		f.From = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			return f, err
		}
		f.To = &d
	}
	f.CategoryID = c.Query("category_id")
	return f, nil
}

// @Summary List transactions
// @Description Retrieve transactions with optional date range, category filter, sorting and pagination
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Param sort_by query string false "Sort column: date or amount"
// @Param sort_dir query string false "Sort direction: asc or desc"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} TransactionPage "Paginated transactions"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func listTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	filter.Page = page
	filter.Limit = limit
	filter.SortBy = c.DefaultQuery("sort_by", "date")
	filter.SortDir = c.DefaultQuery("sort_dir", "desc")

	transactions, total, err := dataStore.ListTransactions(context.Background(), filter)
	if err != nil {
		log.Printf("Error fetching transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
	})
}

// @Summary Create transaction
// @Description Record a new transaction. Type must be Credit or Debit; amount must not be negative.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} store.Transaction "Created transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	var request CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description cannot be empty"})
		return
	}
	if err := validateTransactionType(request.Type); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	date, err := parseDate(request.TransactionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction_date, expected YYYY-MM-DD"})
		return
	}

	if request.CategoryID != nil && *request.CategoryID != "" {
		if _, err := uuid.Parse(*request.CategoryID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
	}

	transaction := store.Transaction{
		Description:     request.Description,
		Amount:          request.Amount,
		Type:            request.Type,
		TransactionDate: date,
		CategoryID:      request.CategoryID,
		Subcategory:     request.Subcategory,
	}

	created, err := dataStore.CreateTransaction(context.Background(), transaction)
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update transaction
// @Description Replace the mutable fields of a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body CreateTransactionRequest true "Transaction data"
// @Success 200 {object} store.Transaction "Updated transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID format"})
		return
	}

	var request CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description cannot be empty"})
		return
	}
	if err := validateTransactionType(request.Type); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	date, err := parseDate(request.TransactionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction_date, expected YYYY-MM-DD"})
		return
	}

	transaction := store.Transaction{
		ID:              id,
		Description:     request.Description,
		Amount:          request.Amount,
		Type:            request.Type,
		TransactionDate: date,
		CategoryID:      request.CategoryID,
		Subcategory:     request.Subcategory,
	}

	updated, err := dataStore.UpdateTransaction(context.Background(), transaction)
	if err != nil {
		log.Printf("Error updating transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete transaction
// @Description Delete a specific transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID format"})
		return
	}

	if err := dataStore.DeleteTransaction(context.Background(), id); err != nil {
		log.Printf("Error deleting transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
