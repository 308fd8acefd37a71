package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rogerio-castellano/inventory-ledger/internal/auth"
	"github.com/rogerio-castellano/inventory-ledger/internal/cache"
	"github.com/rogerio-castellano/inventory-ledger/internal/config"
	"github.com/rogerio-castellano/inventory-ledger/internal/db"
	api "github.com/rogerio-castellano/inventory-ledger/internal/http"
	"github.com/rogerio-castellano/inventory-ledger/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-ledger/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
	"github.com/rogerio-castellano/inventory-ledger/internal/report"
)

// @title Inventory Ledger API
// @version 1.0
// @description REST API for the product catalog, order ledger, sales reports and fleet expiry alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("could not ensure schema: %v", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCustomerRepo(repo.NewPostgresCustomerRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetDriverRepo(repo.NewPostgresDriverRepository(database))
	handlers.SetVehicleRepo(repo.NewPostgresVehicleRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetLowStockThreshold(cfg.LowStockThreshold)

	var reporter report.Reporter = report.NewPostgresReporter(database)
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewClient(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatalf("could not connect to redis: %v", err)
		}
		defer rdb.Close()
		reporter = cache.NewCachedReporter(reporter, rdb, cfg.ReportCacheTTL)
	}
	handlers.SetReporter(reporter)

	r := api.NewRouter()
	log.Printf("server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
