package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ── Counter types ─────────────────────────────────────────────────────────────

type ProductStats struct {
	TotalProducts int64 `json:"totalProducts"`
}

type LowStockStats struct {
	LowStockCount int64 `json:"lowStockCount"`
}

type OutOfStockStats struct {
	OutOfStockCount int64 `json:"outOfStockCount"`
}

type SalesStats struct {
	TotalSales int64 `json:"totalSales"`
}

// ── Interface ─────────────────────────────────────────────────────────────────

// StatsService provides the scalar dashboard counters. Each method is a
// single aggregate query.
type StatsService interface {
	ProductStats(ctx context.Context) (*ProductStats, error)

	// LowStock counts products whose stock is above zero but at or below
	// their configured low-stock threshold.
	LowStock(ctx context.Context) (*LowStockStats, error)

	// OutOfStock counts products with no stock left.
	OutOfStock(ctx context.Context) (*OutOfStockStats, error)

	SalesStats(ctx context.Context) (*SalesStats, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type statsService struct {
	pool *pgxpool.Pool
}

// NewStatsService constructs a StatsService backed by the given pool.
func NewStatsService(pool *pgxpool.Pool) StatsService {
	return &statsService{pool: pool}
}

func (s *statsService) ProductStats(ctx context.Context) (*ProductStats, error) {
	var st ProductStats
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products",
	).Scan(&st.TotalProducts); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	return &st, nil
}

func (s *statsService) LowStock(ctx context.Context) (*LowStockStats, error) {
	var st LowStockStats
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE stock > 0 AND stock <= low_stock_threshold",
	).Scan(&st.LowStockCount); err != nil {
		return nil, fmt.Errorf("failed to count low-stock products: %w", err)
	}
	return &st, nil
}

func (s *statsService) OutOfStock(ctx context.Context) (*OutOfStockStats, error) {
	var st OutOfStockStats
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE stock <= 0",
	).Scan(&st.OutOfStockCount); err != nil {
		return nil, fmt.Errorf("failed to count out-of-stock products: %w", err)
	}
	return &st, nil
}

func (s *statsService) SalesStats(ctx context.Context) (*SalesStats, error) {
	var st SalesStats
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales",
	).Scan(&st.TotalSales); err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}
	return &st, nil
}
