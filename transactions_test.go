package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"finbooks/store"
)

func TestCreateTransaction(t *testing.T) {
	resetTestStore()
	categoryID := createTestCategory(t, "Sales Revenue", "Revenue", nil)

	body, _ := json.Marshal(CreateTransactionRequest{
		Description:     "Invoice 42",
		Amount:          1500.00,
		Type:            "Credit",
		TransactionDate: "2025-03-10",
		CategoryID:      &categoryID,
	})

	recorder := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusCreated, recorder.Code)

	var created store.Transaction
	assertNoError(t, parseJSONResponse(recorder, &created))

	if created.ID == "" {
		t.Error("Expected created transaction to have an ID")
	}
	if created.Description != "Invoice 42" {
		t.Errorf("Expected description 'Invoice 42', got %q", created.Description)
	}
	if created.Amount != 1500.00 {
		t.Errorf("Expected amount 1500.00, got %f", created.Amount)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	resetTestStore()

	cases := []struct {
		name    string
		request CreateTransactionRequest
	}{
		{"empty description", CreateTransactionRequest{Description: "  ", Amount: 10, Type: "Credit", TransactionDate: "2025-03-10"}},
		{"bad type", CreateTransactionRequest{Description: "x", Amount: 10, Type: "Transfer", TransactionDate: "2025-03-10"}},
		{"negative amount", CreateTransactionRequest{Description: "x", Amount: -5, Type: "Debit", TransactionDate: "2025-03-10"}},
		{"bad date", CreateTransactionRequest{Description: "x", Amount: 10, Type: "Debit", TransactionDate: "03/10/2025"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.request)
			recorder := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))
			assertStatusCode(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateTransactionUnknownCategory(t *testing.T) {
	resetTestStore()

	missing := "a2b1c3d4-0000-0000-0000-000000000000"
	body, _ := json.Marshal(CreateTransactionRequest{
		Description:     "Orphan",
		Amount:          10,
		Type:            "Debit",
		TransactionDate: "2025-03-10",
		CategoryID:      &missing,
	})

	recorder := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusNotFound, recorder.Code)
}

func TestListTransactionsPagination(t *testing.T) {
	resetTestStore()

	for i := 0; i < 5; i++ {
		createTestTransaction(t, "Entry", float64(100+i), "Debit", "2025-03-10", nil, nil)
	}

	recorder := makeRequest("GET", "/api/transactions?page=1&limit=2", nil)
	assertStatusCode(t, http.StatusOK, recorder.Code)

	var page TransactionPage
	assertNoError(t, parseJSONResponse(recorder, &page))

	if page.Total != 5 {
		t.Errorf("Expected total 5, got %d", page.Total)
	}
	if len(page.Transactions) != 2 {
		t.Errorf("Expected 2 transactions on page, got %d", len(page.Transactions))
	}
	if page.Page != 1 || page.Limit != 2 {
		t.Errorf("Expected page 1 limit 2, got page %d limit %d", page.Page, page.Limit)
	}
}

func TestListTransactionsSortByAmount(t *testing.T) {
	resetTestStore()

	createTestTransaction(t, "Mid", 200, "Debit", "2025-03-10", nil, nil)
	createTestTransaction(t, "Low", 100, "Debit", "2025-03-11", nil, nil)
	createTestTransaction(t, "High", 300, "Debit", "2025-03-12", nil, nil)

	recorder := makeRequest("GET", "/api/transactions?sort_by=amount&sort_dir=asc", nil)
	assertStatusCode(t, http.StatusOK, recorder.Code)

	var page TransactionPage
	assertNoError(t, parseJSONResponse(recorder, &page))

	if len(page.Transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(page.Transactions))
	}
	if page.Transactions[0].Amount != 100 || page.Transactions[2].Amount != 300 {
		t.Errorf("Expected ascending amounts, got %f .. %f", page.Transactions[0].Amount, page.Transactions[2].Amount)
	}
}

func TestListTransactionsDateFilter(t *testing.T) {
	resetTestStore()

	createTestTransaction(t, "Before", 100, "Debit", "2025-02-28", nil, nil)
	createTestTransaction(t, "Inside", 200, "Debit", "2025-03-15", nil, nil)
	createTestTransaction(t, "After", 300, "Debit", "2025-04-01", nil, nil)

	recorder := makeRequest("GET", "/api/transactions?start_date=2025-03-01&end_date=2025-03-31", nil)
	assertStatusCode(t, http.StatusOK, recorder.Code)

	var page TransactionPage
	assertNoError(t, parseJSONResponse(recorder, &page))

	if page.Total != 1 {
		t.Fatalf("Expected 1 transaction in range, got %d", page.Total)
	}
	if page.Transactions[0].Description != "Inside" {
		t.Errorf("Expected 'Inside', got %q", page.Transactions[0].Description)
	}
}

func TestListTransactionsInvalidParams(t *testing.T) {
	resetTestStore()

	recorder := makeRequest("GET", "/api/transactions?page=0", nil)
	assertStatusCode(t, http.StatusBadRequest, recorder.Code)

	recorder = makeRequest("GET", "/api/transactions?limit=9999", nil)
	assertStatusCode(t, http.StatusBadRequest, recorder.Code)

	recorder = makeRequest("GET", "/api/transactions?start_date=bogus", nil)
	assertStatusCode(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateTransaction(t *testing.T) {
	resetTestStore()

	created := createTestTransaction(t, "Draft", 50, "Debit", "2025-03-10", nil, nil)

	body, _ := json.Marshal(CreateTransactionRequest{
		Description:     "Final",
		Amount:          75,
		Type:            "Debit",
		TransactionDate: "2025-03-11",
	})

	recorder := makeRequest("PUT", "/api/transactions/"+created.ID, bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusOK, recorder.Code)

	var updated store.Transaction
	assertNoError(t, parseJSONResponse(recorder, &updated))

	if updated.Description != "Final" || updated.Amount != 75 {
		t.Errorf("Expected updated fields, got %q amount %f", updated.Description, updated.Amount)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	resetTestStore()

	body, _ := json.Marshal(CreateTransactionRequest{
		Description:     "Ghost",
		Amount:          75,
		Type:            "Debit",
		TransactionDate: "2025-03-11",
	})

	recorder := makeRequest("PUT", "/api/transactions/a2b1c3d4-0000-0000-0000-000000000000", bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteTransaction(t *testing.T) {
	resetTestStore()

	created := createTestTransaction(t, "Temp", 10, "Debit", "2025-03-10", nil, nil)

	recorder := makeRequest("DELETE", "/api/transactions/"+created.ID, nil)
	assertStatusCode(t, http.StatusOK, recorder.Code)

	recorder = makeRequest("DELETE", "/api/transactions/"+created.ID, nil)
	assertStatusCode(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteTransactionInvalidID(t *testing.T) {
	resetTestStore()

	recorder := makeRequest("DELETE", "/api/transactions/not-a-uuid", nil)
	assertStatusCode(t, http.StatusBadRequest, recorder.Code)
}
