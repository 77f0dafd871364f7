package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Rentals    *RentalHandler
	Products   *ProductHandler
	Customers  *CustomerHandler
	Suppliers  *SupplierHandler
	Pendencies *PendencyHandler
	Auth       *AuthHandler
}

// NewRouter wires the public routes and the authenticated subtree.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	// Public surface: registration, login and the product catalog.
	r.HandleFunc("/sessions", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/customers", h.Customers.Register).Methods(http.MethodPost)
	r.HandleFunc("/products", h.Products.ListAvailable).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.Products.Get).Methods(http.MethodGet)

	auth := r.PathPrefix("/").Subrouter()
	auth.Use(AuthMiddleware(tokens))

	// Rentals. The fixed /customers/rentals path must be registered before
	// the /customers/{id} wildcard below.
	auth.HandleFunc("/rentals", h.Rentals.Create).Methods(http.MethodPost)
	auth.HandleFunc("/rentals", h.Rentals.List).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/confirm/pickup", h.Rentals.ConfirmPickup).Methods(http.MethodPatch)
	auth.HandleFunc("/rentals/confirm/return", h.Rentals.ConfirmReturn).Methods(http.MethodPatch)
	auth.HandleFunc("/customers/rentals", h.Rentals.CustomerRentals).Methods(http.MethodGet)

	// Inventory management.
	auth.HandleFunc("/products", h.Products.Add).Methods(http.MethodPost)
	auth.HandleFunc("/productsInventory", h.Products.ListInventory).Methods(http.MethodGet)
	auth.HandleFunc("/products/{id}", h.Products.Update).Methods(http.MethodPut)
	auth.HandleFunc("/products/{id}", h.Products.Delete).Methods(http.MethodDelete)

	// Customers.
	auth.HandleFunc("/customers", h.Customers.List).Methods(http.MethodGet)
	auth.HandleFunc("/customers/{id}", h.Customers.Update).Methods(http.MethodPut)
	auth.HandleFunc("/customers/{id}", h.Customers.Delete).Methods(http.MethodDelete)

	// Suppliers.
	auth.HandleFunc("/suppliers", h.Suppliers.Create).Methods(http.MethodPost)
	auth.HandleFunc("/suppliers", h.Suppliers.List).Methods(http.MethodGet)
	auth.HandleFunc("/suppliers/{id}", h.Suppliers.Update).Methods(http.MethodPut)
	auth.HandleFunc("/suppliers/{id}", h.Suppliers.Delete).Methods(http.MethodDelete)

	// Pendencies.
	auth.HandleFunc("/pendencies", h.Pendencies.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/pendencies/{id}/resolve", h.Pendencies.Resolve).Methods(http.MethodPatch)

	return r
}
