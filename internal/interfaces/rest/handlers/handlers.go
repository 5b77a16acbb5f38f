// Package handlers exposes the checkout and catalog services over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

// IntentCreator mints payment intents.
type IntentCreator interface {
	CreateIntent(ctx context.Context, cmd services.CreateIntentCommand) (*domain.PaymentIntent, error)
}

// Confirmer finalizes payment intents into orders.
type Confirmer interface {
	Confirm(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error)
}

// Catalog serves product reads and administrative writes.
type Catalog interface {
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, cmd services.CreateProductCommand) (*domain.Product, error)
	AddReview(ctx context.Context, cmd services.AddReviewCommand) (*domain.Review, error)
}

// HealthChecker reports storage liveness.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Handlers struct {
	intents      IntentCreator
	confirmer    Confirmer
	catalog      Catalog
	health       HealthChecker
	environment  string
	exposeDetail bool
	logger       *slog.Logger
}

func NewHandlers(
	intents IntentCreator,
	confirmer Confirmer,
	catalog Catalog,
	health HealthChecker,
	environment string,
	exposeDetail bool,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		intents:      intents,
		confirmer:    confirmer,
		catalog:      catalog,
		health:       health,
		environment:  environment,
		exposeDetail: exposeDetail,
		logger:       logger,
	}
}

// Register wires every route onto the mux.
func (h *Handlers) Register(mux *http.ServeMux, adminAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /payment-intents", h.CreatePaymentIntent)
	mux.HandleFunc("GET /payment-intents", h.PaymentIntentsLiveness)
	mux.HandleFunc("POST /payment-confirmations", h.ConfirmPayment)

	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /products/{slug}", h.GetProduct)
	mux.Handle("POST /products", adminAuth(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("POST /products/{slug}/reviews", adminAuth(http.HandlerFunc(h.AddReview)))

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /docs/openapi.yaml", h.OpenAPIDocument)
}

// decodeJSON decodes a request body, mapping malformed input to a 400.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteJSON(w, http.StatusBadRequest, rest.ErrorResponse{
			Error: "request body is not valid JSON",
			Code:  application.ErrCodeValidationFailed,
		})
		return false
	}
	return true
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	rest.WriteError(w, err, h.logger, h.exposeDetail)
}
