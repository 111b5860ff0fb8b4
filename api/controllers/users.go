package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cartwheel-labs/storefront-core/api/responses"
	"github.com/cartwheel-labs/storefront-core/api/validators"
	"github.com/cartwheel-labs/storefront-core/internal/fixtures"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
)

// Users serves the user directory endpoints. Credential checks are a
// filtered listing, matching the upstream contract the login client
// expects.
type Users struct {
	Store  *fixtures.UserStore
	Logger *logger.Logger
}

type userPayload struct {
	Username string           `json:"username" validate:"required,min=3"`
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=6"`
	Name     identity.Name    `json:"name"`
	Phone    string           `json:"phone" validate:"omitempty,phone"`
	Address  identity.Address `json:"address"`
}

func (p userPayload) toUser() identity.User {
	return identity.User{
		Username: p.Username,
		Email:    p.Email,
		Password: p.Password,
		Name:     p.Name,
		Phone:    p.Phone,
		Address:  p.Address,
	}
}

// List handles GET /users with optional username/password filters.
func (u *Users) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := u.Store.List(q.Get("username"), q.Get("password"))
	responses.WriteJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (u *Users) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		responses.WriteError(r.Context(), u.Logger, w, pkgerrors.New(pkgerrors.CodeValidation, "user id must be a positive integer"))
		return
	}
	user, ok := u.Store.Get(id)
	if !ok {
		responses.WriteError(r.Context(), u.Logger, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
		return
	}
	responses.WriteJSON(w, http.StatusOK, user)
}

// Create handles POST /users.
func (u *Users) Create(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		responses.WriteError(r.Context(), u.Logger, w, err)
		return
	}

	if existing := u.Store.List(payload.Username, ""); len(existing) > 0 {
		responses.WriteError(r.Context(), u.Logger, w, pkgerrors.New(pkgerrors.CodeConflict, "username already taken"))
		return
	}

	created := u.Store.Create(payload.toUser())
	responses.WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /users/{id}.
func (u *Users) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		responses.WriteError(r.Context(), u.Logger, w, pkgerrors.New(pkgerrors.CodeValidation, "user id must be a positive integer"))
		return
	}

	var payload userPayload
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		responses.WriteError(r.Context(), u.Logger, w, err)
		return
	}

	updated, ok := u.Store.Update(id, payload.toUser())
	if !ok {
		responses.WriteError(r.Context(), u.Logger, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
		return
	}
	responses.WriteJSON(w, http.StatusOK, updated)
}
