// Package controllers implements the mock commerce API handlers. The
// product and user endpoints reproduce the upstream wire contract the
// storefront clients are written against, so payloads are bare JSON
// rather than enveloped.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cartwheel-labs/storefront-core/api/responses"
	"github.com/cartwheel-labs/storefront-core/internal/fixtures"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
)

// Catalog serves the read-only product endpoints.
type Catalog struct {
	Logger *logger.Logger
}

// List handles GET /products. An optional limit query caps the result.
func (c *Catalog) List(w http.ResponseWriter, r *http.Request) {
	products := fixtures.Products()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			responses.WriteError(r.Context(), c.Logger, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a non-negative integer"))
			return
		}
		if limit < len(products) {
			products = products[:limit]
		}
	}

	responses.WriteJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}.
func (c *Catalog) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		responses.WriteError(r.Context(), c.Logger, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer"))
		return
	}

	product, ok := fixtures.ProductByID(id)
	if !ok {
		responses.WriteError(r.Context(), c.Logger, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
		return
	}
	responses.WriteJSON(w, http.StatusOK, product)
}

// Categories handles GET /products/categories.
func (c *Catalog) Categories(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, fixtures.Categories())
}

// ByCategory handles GET /products/category/{name}. Unknown categories
// answer with an empty list.
func (c *Catalog) ByCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	responses.WriteJSON(w, http.StatusOK, fixtures.ProductsByCategory(name))
}
