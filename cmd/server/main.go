package main

import (
	"log"
	"net/http"
	"os"

	_ "mealbridge/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mealbridge/internal/auth"
	"mealbridge/internal/cache"
	"mealbridge/internal/config"
	"mealbridge/internal/db"
	"mealbridge/internal/handler"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
	"mealbridge/internal/router"
	"mealbridge/internal/service"
)

// @title MealBridge API
// @version 1.0
// @description Surplus-food donation platform connecting restaurants with NPOs.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.OrderItem{},
			&model.Order{},
			&model.Listing{},
			&model.Account{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Listing{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(accountRepo, jwtService, tokenStore)
	catalogService := service.NewCatalogService(listingRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo, cacheClient)
	searchService := service.NewSearchService(accountRepo, listingRepo)
	dashboardService := service.NewDashboardService(accountRepo, listingRepo, orderRepo, cacheClient)
	reportService := service.NewReportService(orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	listingHandler := handler.NewListingHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	searchHandler := handler.NewSearchHandler(searchService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		dashboardHandler,
		listingHandler,
		orderHandler,
		searchHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
