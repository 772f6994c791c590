package web

import (
	"encoding/csv"
	"errors"
	"net/http"

	"retail-backoffice/internal/core"
)

// profitLoss handles GET /api/reports/profit-loss?startDate=&endDate=.
// When format=csv, streams the report as CSV instead of JSON.
func (h *Handler) profitLoss(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	report, err := h.reporting.ProfitLoss(r.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, core.ErrMissingParameter) || errors.Is(err, core.ErrInvalidDate) {
			writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
			return
		}
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeProfitLossCSV(w, report)
		return
	}
	writeJSON(w, report)
}

// writeProfitLossCSV streams the report as a two-column CSV: the summary
// figures followed by one row per expense category.
func writeProfitLossCSV(w http.ResponseWriter, report *core.ProfitLossReport) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		`attachment; filename="profit-loss-`+report.StartDate+`-`+report.EndDate+`.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Metric", "Amount"})
	_ = cw.Write([]string{"Total Revenue", report.TotalRevenue.StringFixed(2)})
	_ = cw.Write([]string{"Total COGS", report.TotalCogs.StringFixed(2)})
	_ = cw.Write([]string{"Gross Profit", report.GrossProfit.StringFixed(2)})
	for _, e := range report.ExpensesByCategory {
		_ = cw.Write([]string{"Expense: " + csvSafe(e.Category), e.Total.StringFixed(2)})
	}
	_ = cw.Write([]string{"Total Expenses", report.TotalExpenses.StringFixed(2)})
	_ = cw.Write([]string{"Net Profit", report.NetProfit.StringFixed(2)})
	cw.Flush()
}

// csvSafe prevents CSV formula injection by prefixing cells that begin with
// a formula-triggering character with a single quote.
func csvSafe(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// topSellingProducts handles GET /api/reports/top-selling-products.
func (h *Handler) topSellingProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.reporting.TopSellingProducts(r.Context(), 20)
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, products)
}
