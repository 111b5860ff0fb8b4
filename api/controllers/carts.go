package controllers

import (
	"net/http"
	"strconv"

	"github.com/cartwheel-labs/storefront-core/api/responses"
	"github.com/cartwheel-labs/storefront-core/internal/fixtures"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
)

// Carts serves the server-side cart lookups the post-login import uses.
type Carts struct {
	Logger *logger.Logger
}

// List handles GET /carts with an optional userId filter.
func (c *Carts) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		responses.WriteJSON(w, http.StatusOK, fixtures.Carts())
		return
	}

	userID, err := strconv.Atoi(raw)
	if err != nil || userID <= 0 {
		responses.WriteError(r.Context(), c.Logger, w, pkgerrors.New(pkgerrors.CodeValidation, "userId must be a positive integer"))
		return
	}
	responses.WriteJSON(w, http.StatusOK, fixtures.CartsForUser(userID))
}
