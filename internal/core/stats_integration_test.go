package core_test

import (
	"context"
	"testing"

	"retail-backoffice/internal/core"
)

func TestStats_Counters(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, code, name, price, stock, low_stock_threshold) VALUES
		(1, 'P-001', 'Espresso Beans', 50.00, 40, 5),
		(2, 'P-002', 'Filter Paper', 5.00, 3, 20),
		(3, 'P-003', 'Mug', 12.00, 0, 5);

		INSERT INTO sales (id, date, total_amount) VALUES
		(1, '2024-01-05T10:30:00Z', 100.00),
		(2, '2024-01-06T12:00:00Z', 60.00);
	`)
	if err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	stats := core.NewStatsService(pool)

	products, err := stats.ProductStats(ctx)
	if err != nil {
		t.Fatalf("ProductStats failed: %v", err)
	}
	if products.TotalProducts != 3 {
		t.Errorf("total products: want 3, got %d", products.TotalProducts)
	}

	low, err := stats.LowStock(ctx)
	if err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}
	if low.LowStockCount != 1 {
		t.Errorf("low stock: want 1 (P-002 only), got %d", low.LowStockCount)
	}

	out, err := stats.OutOfStock(ctx)
	if err != nil {
		t.Fatalf("OutOfStock failed: %v", err)
	}
	if out.OutOfStockCount != 1 {
		t.Errorf("out of stock: want 1 (P-003 only), got %d", out.OutOfStockCount)
	}

	sales, err := stats.SalesStats(ctx)
	if err != nil {
		t.Fatalf("SalesStats failed: %v", err)
	}
	if sales.TotalSales != 2 {
		t.Errorf("total sales: want 2, got %d", sales.TotalSales)
	}
}

func TestUsers_List(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (name, email, role) VALUES
		('Ada', 'ada@example.com', 'admin'),
		('Grace', 'grace@example.com', 'staff');
	`)
	if err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	users := core.NewUserService(pool)
	list, err := users.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	if list[0].Name != "Ada" || list[0].Role != "admin" {
		t.Errorf("first user: want Ada/admin, got %s/%s", list[0].Name, list[0].Role)
	}
	if list[1].Email != "grace@example.com" {
		t.Errorf("second user email: got %s", list[1].Email)
	}
}
