package web

import "net/http"

// listUsers handles GET /api/users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "DATA_ACCESS", http.StatusInternalServerError)
		return
	}
	writeJSON(w, users)
}
