package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ── Report types ──────────────────────────────────────────────────────────────

// ExpenseCategoryTotal is one row of the categorized expense breakdown.
type ExpenseCategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ProfitLossReport is the profit & loss summary for one inclusive
// calendar-date range. GrossProfit and NetProfit may be negative.
// StartDate and EndDate echo the request as calendar dates, not timestamps.
type ProfitLossReport struct {
	StartDate          string                 `json:"startDate"`
	EndDate            string                 `json:"endDate"`
	TotalRevenue       decimal.Decimal        `json:"totalRevenue"`
	TotalCogs          decimal.Decimal        `json:"totalCogs"`
	GrossProfit        decimal.Decimal        `json:"grossProfit"`
	ExpensesByCategory []ExpenseCategoryTotal `json:"expensesByCategory"`
	TotalExpenses      decimal.Decimal        `json:"totalExpenses"`
	NetProfit          decimal.Decimal        `json:"netProfit"`
}

// TopProduct is one entry of the top-selling products listing.
type TopProduct struct {
	ProductID         int             `json:"product_id"`
	ProductName       string          `json:"product_name"`
	ProductCode       string          `json:"product_code"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService provides read-only reporting queries over sales and
// expense data. It never mutates store state.
type ReportingService interface {
	// ProfitLoss computes the P&L report for the inclusive date range
	// [startDate, endDate], both given as YYYY-MM-DD calendar dates.
	// An empty parameter fails with ErrMissingParameter and a malformed one
	// with ErrInvalidDate, in both cases before any query is issued.
	// startDate > endDate is not an error: the range matches nothing and
	// every figure is zero.
	ProfitLoss(ctx context.Context, startDate, endDate string) (*ProfitLossReport, error)

	// TopSellingProducts returns up to limit products ordered by total
	// quantity sold descending (ties broken by product code ascending).
	TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type reportingService struct {
	pool *pgxpool.Pool
}

// NewReportingService constructs a ReportingService backed by the given pool.
func NewReportingService(pool *pgxpool.Pool) ReportingService {
	return &reportingService{pool: pool}
}

const calendarDateLayout = "2006-01-02"

// ValidateReportDate checks that value is a syntactically valid ISO calendar
// date. name is the parameter name used in the error message.
func ValidateReportDate(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %w", name, ErrMissingParameter)
	}
	if _, err := time.Parse(calendarDateLayout, value); err != nil {
		return fmt.Errorf("%s %q: %w", name, value, ErrInvalidDate)
	}
	return nil
}

// AssembleProfitLoss reduces the three aggregate results into a report.
// It owns all derived arithmetic: grossProfit = revenue - cogs,
// totalExpenses = sum of the category totals, netProfit = gross - expenses.
// expenses must already be ordered (total descending); the order is preserved.
func AssembleProfitLoss(startDate, endDate string, revenue, cogs decimal.Decimal, expenses []ExpenseCategoryTotal) *ProfitLossReport {
	if expenses == nil {
		expenses = []ExpenseCategoryTotal{} // marshals as [], never null
	}
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Total)
	}
	grossProfit := revenue.Sub(cogs)
	return &ProfitLossReport{
		StartDate:          startDate,
		EndDate:            endDate,
		TotalRevenue:       revenue,
		TotalCogs:          cogs,
		GrossProfit:        grossProfit,
		ExpensesByCategory: expenses,
		TotalExpenses:      totalExpenses,
		NetProfit:          grossProfit.Sub(totalExpenses),
	}
}

// ── ProfitLoss ────────────────────────────────────────────────────────────────

// ProfitLoss issues the three independent aggregate reads concurrently and
// reduces them in memory. Sale.date is a timestamp, so the inclusive calendar
// range is widened to [startDate, endDate + 1 day) to cover the whole end day;
// daily_expenses.expense_date is a plain date and is compared directly.
// A failure in any one read fails the whole report.
func (s *reportingService) ProfitLoss(ctx context.Context, startDate, endDate string) (*ProfitLossReport, error) {
	if err := ValidateReportDate("startDate", startDate); err != nil {
		return nil, err
	}
	if err := ValidateReportDate("endDate", endDate); err != nil {
		return nil, err
	}

	var (
		revenue  decimal.Decimal
		cogs     decimal.Decimal
		expenses []ExpenseCategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenue, err = s.sumRevenue(gctx, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		cogs, err = s.sumCogs(gctx, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expensesByCategory(gctx, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AssembleProfitLoss(startDate, endDate, revenue, cogs, expenses), nil
}

// sumRevenue totals sales.total_amount over the widened timestamp range.
func (s *reportingService) sumRevenue(ctx context.Context, startDate, endDate string) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	if err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE date >= $1::date
		  AND date < $2::date + INTERVAL '1 day'`,
		startDate, endDate,
	).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query revenue: %w", err)
	}
	return revenue, nil
}

// sumCogs totals quantity * cost_price over sale items whose parent sale
// falls in the same range as sumRevenue.
func (s *reportingService) sumCogs(ctx context.Context, startDate, endDate string) (decimal.Decimal, error) {
	var cogs decimal.Decimal
	if err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(si.quantity * si.cost_price), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.date >= $1::date
		  AND s.date < $2::date + INTERVAL '1 day'`,
		startDate, endDate,
	).Scan(&cogs); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query cost of goods sold: %w", err)
	}
	return cogs, nil
}

// expensesByCategory groups daily expenses by category over the inclusive
// calendar-date range. Ordered by total descending; equal totals fall back
// to category name ascending so the output is deterministic.
func (s *reportingService) expensesByCategory(ctx context.Context, startDate, endDate string) ([]ExpenseCategoryTotal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT category, SUM(amount) AS total
		FROM daily_expenses
		WHERE expense_date BETWEEN $1::date AND $2::date
		GROUP BY category
		ORDER BY total DESC, category ASC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []ExpenseCategoryTotal{}
	for rows.Next() {
		var e ExpenseCategoryTotal
		if err := rows.Scan(&e.Category, &e.Total); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("expense row iteration error: %w", err)
	}
	return expenses, nil
}

// ── TopSellingProducts ────────────────────────────────────────────────────────

func (s *reportingService) TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.name, p.code,
		       SUM(si.quantity)    AS total_quantity_sold,
		       SUM(si.total_price) AS total_revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name, p.code
		ORDER BY total_quantity_sold DESC, p.code ASC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query top selling products: %w", err)
	}
	defer rows.Close()

	products := []TopProduct{}
	for rows.Next() {
		var p TopProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.ProductCode, &p.TotalQuantitySold, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top product row iteration error: %w", err)
	}
	return products, nil
}
