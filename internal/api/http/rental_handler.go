package http

import (
	"net/http"

	"equiprent-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	UnitID          string `json:"unit_id"`
	DurationMinutes int32  `json:"duration_minutes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
		return
	}

	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	code, err := h.rentals.Create(r.Context(), claims.CustomerID, req.UnitID, req.DurationMinutes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"code": code})
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	rentals, err := h.rentals.List(r.Context(), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

type confirmRequest struct {
	Code string `json:"code"`
}

func (h *RentalHandler) ConfirmPickup(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	rental, err := h.rentals.ConfirmPickup(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type confirmReturnResponse struct {
	HasPendency bool        `json:"hasPendency"`
	Data        interface{} `json:"data"`
}

func (h *RentalHandler) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
		return
	}

	var req confirmRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	result, err := h.rentals.ConfirmReturn(r.Context(), claims.CustomerID, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := confirmReturnResponse{HasPendency: result.HasPendency}
	if result.HasPendency {
		resp.Data = result.Pendency
	} else {
		resp.Data = result.Rental
	}
	writeJSON(w, http.StatusOK, resp)
}

// CustomerRentals lists the calling customer's rentals split into active and
// completed.
func (h *RentalHandler) CustomerRentals(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
		return
	}

	active, completed, err := h.rentals.CustomerRentals(r.Context(), claims.CustomerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active":    active,
		"completed": completed,
	})
}
