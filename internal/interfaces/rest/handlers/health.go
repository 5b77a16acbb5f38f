package handlers

import (
	_ "embed"
	"net/http"

	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

//go:embed openapi.yaml
var openAPIDocument []byte

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health with a live storage ping.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Health(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		rest.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	rest.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// OpenAPIDocument handles GET /docs/openapi.yaml.
func (h *Handlers) OpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPIDocument)
}
