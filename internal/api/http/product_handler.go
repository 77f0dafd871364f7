package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type addProductRequest struct {
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Description     string `json:"description"`
	HourlyRateCents int32  `json:"hourly_rate_cents"`
	CoverURL        string `json:"cover_url"`
	Category        string `json:"category"`
	SupplierID      string `json:"supplier_id"`
	Color           string `json:"color"`
	Size            string `json:"size"`
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	product, err := h.products.AddProduct(r.Context(), service.AddProductInput{
		Brand:           req.Brand,
		Model:           req.Model,
		Description:     req.Description,
		HourlyRateCents: req.HourlyRateCents,
		CoverURL:        req.CoverURL,
		Category:        req.Category,
		SupplierID:      req.SupplierID,
		Color:           req.Color,
		Size:            req.Size,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *ProductHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.products.ListAvailable(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *ProductHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	listings, err := h.products.ListInventory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := decodeBody(r, &product); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}
	product.ID = mux.Vars(r)["id"]

	if err := h.products.UpdateProduct(r.Context(), &product); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
