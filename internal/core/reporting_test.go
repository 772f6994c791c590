package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"retail-backoffice/internal/core"

	"github.com/shopspring/decimal"
)

func TestValidateReportDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"valid date", "2024-01-05", nil},
		{"valid leap day", "2024-02-29", nil},
		{"empty", "", core.ErrMissingParameter},
		{"month out of range", "2024-13-40", core.ErrInvalidDate},
		{"day out of range", "2024-02-30", core.ErrInvalidDate},
		{"not a date at all", "yesterday", core.ErrInvalidDate},
		{"wrong layout", "05-01-2024", core.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.ValidateReportDate("startDate", tt.value)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// A service built on a nil pool can only survive a ProfitLoss call if
// validation rejects the input before any query is issued.
func TestProfitLoss_ValidatesBeforeStoreAccess(t *testing.T) {
	svc := core.NewReportingService(nil)
	ctx := context.Background()

	if _, err := svc.ProfitLoss(ctx, "", "2024-01-31"); !errors.Is(err, core.ErrMissingParameter) {
		t.Errorf("missing startDate: want ErrMissingParameter, got %v", err)
	}
	if _, err := svc.ProfitLoss(ctx, "2024-01-01", ""); !errors.Is(err, core.ErrMissingParameter) {
		t.Errorf("missing endDate: want ErrMissingParameter, got %v", err)
	}
	if _, err := svc.ProfitLoss(ctx, "2024-13-40", "2024-01-31"); !errors.Is(err, core.ErrInvalidDate) {
		t.Errorf("invalid startDate: want ErrInvalidDate, got %v", err)
	}
	if _, err := svc.ProfitLoss(ctx, "2024-01-01", "2024-01-32"); !errors.Is(err, core.ErrInvalidDate) {
		t.Errorf("invalid endDate: want ErrInvalidDate, got %v", err)
	}
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAssembleProfitLoss(t *testing.T) {
	t.Run("derived figures", func(t *testing.T) {
		expenses := []core.ExpenseCategoryTotal{
			{Category: "Rent", Total: d("30")},
			{Category: "Utilities", Total: d("12.50")},
		}
		report := core.AssembleProfitLoss("2024-01-01", "2024-01-31", d("100"), d("20"), expenses)

		if !report.GrossProfit.Equal(d("80")) {
			t.Errorf("gross profit: want 80, got %s", report.GrossProfit)
		}
		if !report.TotalExpenses.Equal(d("42.50")) {
			t.Errorf("total expenses: want 42.50, got %s", report.TotalExpenses)
		}
		if !report.NetProfit.Equal(d("37.50")) {
			t.Errorf("net profit: want 37.50, got %s", report.NetProfit)
		}
		if report.StartDate != "2024-01-01" || report.EndDate != "2024-01-31" {
			t.Errorf("echoed range wrong: %s..%s", report.StartDate, report.EndDate)
		}
	})

	t.Run("gross and net may go negative", func(t *testing.T) {
		report := core.AssembleProfitLoss("2024-01-01", "2024-01-31", d("10"), d("25"),
			[]core.ExpenseCategoryTotal{{Category: "Rent", Total: d("5")}})
		if !report.GrossProfit.Equal(d("-15")) {
			t.Errorf("gross profit: want -15, got %s", report.GrossProfit)
		}
		if !report.NetProfit.Equal(d("-20")) {
			t.Errorf("net profit: want -20, got %s", report.NetProfit)
		}
	})

	t.Run("arithmetic identities hold", func(t *testing.T) {
		expenses := []core.ExpenseCategoryTotal{
			{Category: "A", Total: d("7.77")},
			{Category: "B", Total: d("0.03")},
			{Category: "C", Total: d("199.99")},
		}
		report := core.AssembleProfitLoss("2023-06-01", "2023-06-30", d("1234.56"), d("789.01"), expenses)

		if !report.GrossProfit.Equal(report.TotalRevenue.Sub(report.TotalCogs)) {
			t.Error("grossProfit != totalRevenue - totalCogs")
		}
		if !report.NetProfit.Equal(report.GrossProfit.Sub(report.TotalExpenses)) {
			t.Error("netProfit != grossProfit - totalExpenses")
		}
		sum := decimal.Zero
		for _, e := range report.ExpensesByCategory {
			sum = sum.Add(e.Total)
		}
		if !report.TotalExpenses.Equal(sum) {
			t.Error("totalExpenses != sum of category totals")
		}
	})

	t.Run("nil expenses become an empty list, not null", func(t *testing.T) {
		report := core.AssembleProfitLoss("2024-02-01", "2024-02-28", decimal.Zero, decimal.Zero, nil)

		if report.ExpensesByCategory == nil {
			t.Fatal("ExpensesByCategory is nil")
		}
		if !report.TotalExpenses.IsZero() || !report.NetProfit.IsZero() {
			t.Errorf("empty range should be all zeros, got expenses=%s net=%s",
				report.TotalExpenses, report.NetProfit)
		}

		body, err := json.Marshal(report)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(body), `"expensesByCategory":[]`) {
			t.Errorf("expected empty JSON array, got %s", body)
		}
	})
}
