package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "retail-backoffice/internal/adapters/web"
	"retail-backoffice/internal/core"
	"retail-backoffice/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, connStr)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	reportingService := core.NewReportingService(pool)
	statsService := core.NewStatsService(pool)
	userService := core.NewUserService(pool)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(reportingService, statsService, userService, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
