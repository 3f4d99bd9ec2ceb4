package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"finbooks/store"
)

func TestCreateCategory(t *testing.T) {
	resetTestStore()

	categoryType := "Current Asset"
	body, _ := json.Marshal(CreateCategoryRequest{
		Name:         "Cash",
		MainCategory: "Asset",
		CategoryType: &categoryType,
	})

	recorder := makeRequest("POST", "/api/categories", bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusCreated, recorder.Code)

	var created store.Category
	assertNoError(t, parseJSONResponse(recorder, &created))

	if created.ID == "" {
		t.Error("Expected created category to have an ID")
	}
	if created.Name != "Cash" || created.MainCategory != "Asset" {
		t.Errorf("Unexpected category fields: %+v", created)
	}
	if created.CategoryType == nil || *created.CategoryType != "Current Asset" {
		t.Error("Expected category_type to round-trip")
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	resetTestStore()

	cases := []struct {
		name    string
		request CreateCategoryRequest
	}{
		{"empty name", CreateCategoryRequest{Name: "  ", MainCategory: "Asset"}},
		{"unknown main category", CreateCategoryRequest{Name: "Misc", MainCategory: "Wishes"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.request)
			recorder := makeRequest("POST", "/api/categories", bytes.NewBuffer(body))
			assertStatusCode(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	resetTestStore()
	createTestCategory(t, "Cash", "Asset", nil)

	body, _ := json.Marshal(CreateCategoryRequest{Name: "Cash", MainCategory: "Asset"})
	recorder := makeRequest("POST", "/api/categories", bytes.NewBuffer(body))
	assertStatusCode(t, http.StatusConflict, recorder.Code)
}

func TestListCategories(t *testing.T) {
	resetTestStore()

	createTestCategory(t, "Rent", "Expense", nil)
	createTestCategory(t, "Cash", "Asset", strPtr("Current Asset"))

	recorder := makeRequest("GET", "/api/categories", nil)
	assertStatusCode(t, http.StatusOK, recorder.Code)

	var categories []store.Category
	assertNoError(t, parseJSONResponse(recorder, &categories))

	if len(categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(categories))
	}
	// Ordered by name
	if categories[0].Name != "Cash" || categories[1].Name != "Rent" {
		t.Errorf("Expected name ordering, got %q, %q", categories[0].Name, categories[1].Name)
	}
}
