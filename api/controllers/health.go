package controllers

import (
	"net/http"

	"github.com/cartwheel-labs/storefront-core/api/responses"
)

// Health serves liveness and readiness probes.
type Health struct{}

func (h *Health) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

func (h *Health) Ready(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
