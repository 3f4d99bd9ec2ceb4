package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"finbooks/ledger"
)

// Memory is an in-memory Store used by tests and local development. It
// mirrors the Postgres implementation's filtering, sorting and paging.
type Memory struct {
	mu           sync.RWMutex
	transactions map[string]Transaction
	categories   map[string]Category
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		transactions: make(map[string]Transaction),
		categories:   make(map[string]Category),
	}
}

func (m *Memory) Close() {}

func (m *Memory) filtered(f TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		if f.From != nil && t.TransactionDate.Before(*f.From) {
			continue
		}
		if f.To != nil && t.TransactionDate.After(*f.To) {
			continue
		}
		if f.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != f.CategoryID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m *Memory) ListTransactions(_ context.Context, f TransactionFilter) ([]Transaction, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := m.filtered(f)
	total := len(out)

	asc := f.SortDir == "asc"
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !asc {
			a, b = b, a
		}
		if f.SortBy == "amount" {
			return a.Amount < b.Amount
		}
		return a.TransactionDate.Before(b.TransactionDate)
	})

	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.Limit
		if start > len(out) {
			start = len(out)
		}
		end := start + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (m *Memory) CreateTransaction(_ context.Context, t Transaction) (Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.CategoryID != nil && *t.CategoryID != "" {
		if _, ok := m.categories[*t.CategoryID]; !ok {
			return Transaction{}, fmt.Errorf("category %s: %w", *t.CategoryID, ErrNotFound)
		}
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	m.transactions[t.ID] = t
	return t, nil
}

func (m *Memory) UpdateTransaction(_ context.Context, t Transaction) (Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.transactions[t.ID]
	if !ok {
		return Transaction{}, ErrNotFound
	}

	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	m.transactions[t.ID] = t
	return t, nil
}

func (m *Memory) DeleteTransaction(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[id]; !ok {
		return ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *Memory) ListCategories(_ context.Context) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetCategory(_ context.Context, id string) (Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.categories[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return c, nil
}

func (m *Memory) CreateCategory(_ context.Context, c Category) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.categories {
		if existing.Name == c.Name {
			return Category{}, fmt.Errorf("duplicate key value violates unique constraint \"categories_name_key\"")
		}
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.categories[c.ID] = c
	return c, nil
}

func (m *Memory) ListEntries(_ context.Context, f TransactionFilter) ([]ledger.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]ledger.Transaction, 0)
	for _, t := range m.filtered(f) {
		entry := ledger.Transaction{
			ID:     t.ID,
			Date:   t.TransactionDate,
			Amount: t.Amount,
			Type:   t.Type,
		}
		if t.Subcategory != nil {
			entry.Subcategory = *t.Subcategory
		}
		if t.CategoryID != nil {
			entry.CategoryID = *t.CategoryID
			if c, ok := m.categories[*t.CategoryID]; ok {
				entry.MainCategory = c.MainCategory
				if c.CategoryType != nil {
					entry.CategoryType = *c.CategoryType
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (m *Memory) Totals(_ context.Context, f TransactionFilter) (Totals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := Totals{}
	for _, t := range m.filtered(f) {
		switch t.Type {
		case ledger.TypeCredit:
			totals.Income += t.Amount
		case ledger.TypeDebit:
			totals.Expense += t.Amount
		}
	}
	totals.Net = totals.Income - totals.Expense
	return totals, nil
}
