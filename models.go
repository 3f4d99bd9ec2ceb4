package main

import "finbooks/store"

// Request and response shapes for the HTTP surface. Persistence types live
// in the store package.

// TaxRequest is the payload for the state tax calculator. Income is loosely
// typed so both JSON numbers and numeric strings are accepted.
type TaxRequest struct {
	State  string      `json:"state" binding:"required"`
	Income interface{} `json:"income"`
}

type TaxResponse struct {
	Tax    string  `json:"tax"`
	State  string  `json:"state"`
	Income float64 `json:"income"`
}

type DepreciationRequest struct {
	Cost       float64 `json:"cost"`
	Salvage    float64 `json:"salvage"`
	UsefulLife float64 `json:"useful_life"`
}

type DepreciationResponse struct {
	AnnualDepreciation string `json:"annual_depreciation"`
}

type CreateTransactionRequest struct {
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	TransactionDate string  `json:"transaction_date"`
	CategoryID      *string `json:"category_id"`
	Subcategory     *string `json:"subcategory"`
}

type CreateCategoryRequest struct {
	Name         string  `json:"name"`
	MainCategory string  `json:"main_category"`
	CategoryType *string `json:"category_type"`
}

// TransactionPage is the paginated envelope returned by the transaction list.
type TransactionPage struct {
	Transactions []store.Transaction `json:"transactions"`
	Total        int                 `json:"total"`
	Page         int                 `json:"page"`
	Limit        int                 `json:"limit"`
}
