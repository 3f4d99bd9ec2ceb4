// Package store persists transactions and categories and materializes the
// classified entries the ledger engines consume.
package store

import (
	"context"
	"errors"
	"time"

	"finbooks/ledger"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Transaction is a persisted ledger transaction. CategoryID and Subcategory
// are optional; an uncategorized transaction is excluded from classified
// aggregations but still listed and counted in totals.
type Transaction struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"`
	Type            string    `json:"type"`
	TransactionDate time.Time `json:"transaction_date"`
	CategoryID      *string   `json:"category_id"`
	Subcategory     *string   `json:"subcategory"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Category classifies transactions. MainCategory carries the statement and
// ratio label; CategoryType carries the current/fixed/non-current split.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MainCategory string    `json:"main_category"`
	CategoryType *string   `json:"category_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionFilter restricts and pages transaction reads. Zero values mean
// no restriction; Limit 0 means no paging.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID string
	SortBy     string // "date" or "amount", default "date"
	SortDir    string // "asc" or "desc", default "desc"
	Page       int
	Limit      int
}

// Totals summarizes a period: credits in, debits out.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// Store is the persistence boundary for the HTTP layer. ListEntries joins
// transactions with their category classification into the form the ledger
// engines take.
type Store interface {
	ListTransactions(ctx context.Context, f TransactionFilter) ([]Transaction, int, error)
	CreateTransaction(ctx context.Context, t Transaction) (Transaction, error)
	UpdateTransaction(ctx context.Context, t Transaction) (Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)

	ListEntries(ctx context.Context, f TransactionFilter) ([]ledger.Transaction, error)
	Totals(ctx context.Context, f TransactionFilter) (Totals, error)

	Close()
}
