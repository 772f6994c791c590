package web

import "net/http"

// productStats handles GET /api/products/stats.
func (h *Handler) productStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.ProductStats(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}

// lowStock handles GET /api/products/stats/lowstock.
func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.LowStock(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}

// outOfStock handles GET /api/products/stats/outofstock.
func (h *Handler) outOfStock(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.OutOfStock(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}

// salesStats handles GET /api/sales/stats.
func (h *Handler) salesStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.SalesStats(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}
