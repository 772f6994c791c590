// Command verify-db checks that the configured database is reachable and
// that the tables the reporting service reads from exist, printing a row
// count for each. Useful when pointing the service at a new environment.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var tables = []string{"sales", "sale_items", "products", "daily_expenses", "users"}

func main() {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		log.Fatal("[CONNECT] DATABASE_URL environment variable not set")
	}

	ctx := context.Background()
	pool := connectDB(ctx, url)
	defer pool.Close()

	for _, table := range tables {
		countTable(ctx, pool, table)
	}

	log.Println("[DONE] database verified")
}

func connectDB(ctx context.Context, url string) *pgxpool.Pool {
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("[CONNECT] failed to create pool: %v", err)
	}

	if err := pool.Ping(connCtx); err != nil {
		log.Fatalf("[CONNECT] failed to ping database: %v", err)
	}

	log.Println("[CONNECT] success")
	return pool
}

func countTable(ctx context.Context, pool *pgxpool.Pool, table string) {
	var exists bool
	err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)",
		table,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("[CHECK] failed to look up table %s: %v", table, err)
	}
	if !exists {
		log.Fatalf("[CHECK] table %s does not exist — apply migrations/001_schema.sql first", table)
	}

	var count int64
	// Table names come from the fixed list above, never from input.
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		log.Fatalf("[CHECK] failed to count %s: %v", table, err)
	}
	log.Printf("[CHECK] %-15s %d rows", table, count)
}
