package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finbooks/docs"
	"finbooks/store"
)

// @title FinBooks API
// @version 1.0
// @description Bookkeeping analysis service: transaction ledger, financial ratios, balance sheet and state income tax calculators.
// @BasePath /

var dataStore store.Store

func main() {
	// Missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "password")
	dbName := getEnv("DB_NAME", "finbooks")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	// Connect with retry so the service survives the database coming up
	// after it does.
	var (
		pg  *store.Postgres
		err error
	)
	maxRetries := 30
	retryInterval := time.Second * 2
	for i := 0; i < maxRetries; i++ {
		pg, err = store.NewPostgres(context.Background(), connStr)
		if err == nil {
			log.Println("Successfully connected to database")
			break
		}
		log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
		time.Sleep(retryInterval)
	}
	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	dataStore = pg
	defer dataStore.Close()

	migrationsPath := filepath.Join(".", "db", "migrations")
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")
		if err := runMigrations(connStr, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}
		if version, dirty, err := getMigrationVersion(connStr, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		log.Println("Database migrations completed successfully")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("CORS_ORIGIN", "http://localhost:3001")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnv("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// registerRoutes wires the API surface; tests reuse it against their own
// engine and store.
func registerRoutes(r *gin.Engine) {
	r.GET("/health", healthCheck)

	r.GET("/api/transactions", listTransactions)
	r.POST("/api/transactions", createTransaction)
	r.PUT("/api/transactions/:id", updateTransaction)
	r.DELETE("/api/transactions/:id", deleteTransaction)

	r.GET("/api/categories", listCategories)
	r.POST("/api/categories", createCategory)

	r.GET("/api/totals", getTotals)

	r.POST("/api/calculate-tax", calculateTax)
	r.GET("/api/tax/jurisdictions", listJurisdictions)
	r.POST("/api/depreciation/straight-line", straightLineDepreciation)

	r.GET("/api/ratios", getRatios)
	r.GET("/api/ratios/compare", compareRatios)
	r.GET("/api/ratios/trailing", getTrailingReturns)

	r.GET("/api/balance-sheet", getBalanceSheet)
	r.GET("/api/balances/categories", getCategoryBalances)
	r.GET("/api/balances/subcategories", getSubcategoryBalances)
	r.GET("/api/balances/types", getTypeBalances)
	r.GET("/api/balances/sections", getSectionBalances)
}

// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
