package web

import (
	"net/http"

	"retail-backoffice/internal/core"

	"github.com/go-chi/chi/v5"
)

// Handler wires the reporting, stats, and user services into the chi router.
type Handler struct {
	reporting core.ReportingService
	stats     core.StatsService
	users     core.UserService
	router    chi.Router
}

// NewHandler creates and wires the chi router with all routes.
// allowedOrigins is the comma-separated ALLOWED_ORIGINS value; empty
// disables CORS.
func NewHandler(reporting core.ReportingService, stats core.StatsService, users core.UserService, allowedOrigins string) http.Handler {
	h := &Handler{
		reporting: reporting,
		stats:     stats,
		users:     users,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB; every endpoint here is a GET

	r.Get("/api/health", h.health)

	// ── Reports ───────────────────────────────────────────────────────────────
	r.Get("/api/reports/profit-loss", h.profitLoss)
	r.Get("/api/reports/top-selling-products", h.topSellingProducts)

	// ── Dashboard counters ────────────────────────────────────────────────────
	r.Get("/api/products/stats", h.productStats)
	r.Get("/api/products/stats/lowstock", h.lowStock)
	r.Get("/api/products/stats/outofstock", h.outOfStock)
	r.Get("/api/sales/stats", h.salesStats)

	// ── Users ─────────────────────────────────────────────────────────────────
	r.Get("/api/users", h.listUsers)

	h.router = r
	return r
}

// health returns service liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}
