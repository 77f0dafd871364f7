package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/service"
)

type PendencyHandler struct {
	pendencies service.PendencyService
}

func NewPendencyHandler(pendencies service.PendencyService) *PendencyHandler {
	return &PendencyHandler{pendencies: pendencies}
}

// ListMine returns the calling customer's pendencies, settled and outstanding.
func (h *PendencyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
		return
	}

	pendencies, err := h.pendencies.ListByCustomer(r.Context(), claims.CustomerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pendencies)
}

func (h *PendencyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	pendency, err := h.pendencies.Resolve(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pendency)
}
