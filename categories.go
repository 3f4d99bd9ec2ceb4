package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"finbooks/store"
)

// Category handler functions

// @Summary List categories
// @Description Retrieve all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} store.Category "List of categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func listCategories(c *gin.Context) {
	categories, err := dataStore.ListCategories(context.Background())
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Description Create a new category. Name must be unique; main_category must be a known section label.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category data"
// @Success 201 {object} store.Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	var request CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateMainCategory(request.MainCategory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := store.Category{
		Name:         request.Name,
		MainCategory: request.MainCategory,
		CategoryType: request.CategoryType,
	}

	created, err := dataStore.CreateCategory(context.Background(), category)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, created)
}
