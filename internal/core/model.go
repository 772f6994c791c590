package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one completed point-of-sale transaction. Date carries full
// timestamp precision; TotalAmount is the sum of the line totals as
// recorded at checkout (trusted, not re-verified here).
type Sale struct {
	ID          int             `json:"id"`
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SaleItem is one line of a Sale. CostPrice is the per-unit cost captured
// at sale time, not the product's current cost.
type SaleItem struct {
	ID         int             `json:"id"`
	SaleID     int             `json:"sale_id"`
	ProductID  int             `json:"product_id"`
	Quantity   int             `json:"quantity"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// DailyExpense is an operating expense entry. ExpenseDate is a calendar
// date with no time component, unlike Sale.Date.
type DailyExpense struct {
	ID          int             `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
}

type Product struct {
	ID                int             `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
