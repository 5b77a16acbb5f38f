package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest/handlers"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock services
type mockIntentService struct {
	createFn func(ctx context.Context, cmd services.CreateIntentCommand) (*domain.PaymentIntent, error)
}

func (m *mockIntentService) CreateIntent(ctx context.Context, cmd services.CreateIntentCommand) (*domain.PaymentIntent, error) {
	return m.createFn(ctx, cmd)
}

type mockConfirmService struct {
	confirmFn func(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error)
}

func (m *mockConfirmService) Confirm(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error) {
	return m.confirmFn(ctx, cmd)
}

type mockCatalogService struct {
	getFn       func(ctx context.Context, slug string) (*domain.Product, error)
	listFn      func(ctx context.Context) ([]*domain.Product, error)
	createFn    func(ctx context.Context, cmd services.CreateProductCommand) (*domain.Product, error)
	addReviewFn func(ctx context.Context, cmd services.AddReviewCommand) (*domain.Review, error)
}

func (m *mockCatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return m.getFn(ctx, slug)
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return m.listFn(ctx)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, cmd services.CreateProductCommand) (*domain.Product, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockCatalogService) AddReview(ctx context.Context, cmd services.AddReviewCommand) (*domain.Review, error) {
	return m.addReviewFn(ctx, cmd)
}

type mockHealth struct {
	healthFn func(ctx context.Context) error
}

func (m *mockHealth) Health(ctx context.Context) error {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const adminToken = "test-admin-token"

func newTestServer(
	intents *mockIntentService,
	confirmer *mockConfirmService,
	catalog *mockCatalogService,
	health *mockHealth,
) *http.ServeMux {
	h := handlers.NewHandlers(intents, confirmer, catalog, health, "test", true, testLogger())
	mux := http.NewServeMux()
	h.Register(mux, middleware.AdminAuth(adminToken, testLogger()))
	return mux
}

func eggyProItems() []domain.LineItem {
	return []domain.LineItem{
		{ID: "eggypro-original", Name: "EggyPro Original", Price: 29.99, Quantity: 1},
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("returns 201 with intent payload", func(t *testing.T) {
		intents := &mockIntentService{
			createFn: func(ctx context.Context, cmd services.CreateIntentCommand) (*domain.PaymentIntent, error) {
				return domain.NewPaymentIntent(cmd.Amount, cmd.Currency, cmd.Items)
			},
		}
		mux := newTestServer(intents, nil, nil, nil)

		body, _ := json.Marshal(map[string]any{
			"amount":   29.99,
			"currency": "usd",
			"items":    eggyProItems(),
		})
		req := httptest.NewRequest(http.MethodPost, "/payment-intents", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			PaymentIntentID string `json:"paymentIntentId"`
			ClientSecret    string `json:"clientSecret"`
			Amount          int64  `json:"amount"`
			Currency        string `json:"currency"`
			Status          string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.PaymentIntentID)
		assert.NotEmpty(t, resp.ClientSecret)
		assert.Equal(t, int64(2999), resp.Amount)
		assert.Equal(t, "usd", resp.Currency)
		assert.Equal(t, "requires_payment_method", resp.Status)
	})

	t.Run("returns 400 with error body on validation failure", func(t *testing.T) {
		intents := &mockIntentService{
			createFn: func(ctx context.Context, cmd services.CreateIntentCommand) (*domain.PaymentIntent, error) {
				return nil, application.NewValidationError(domain.NewNonPositiveAmountError(cmd.Amount))
			},
		}
		mux := newTestServer(intents, nil, nil, nil)

		body, _ := json.Marshal(map[string]any{"amount": -10, "currency": "usd"})
		req := httptest.NewRequest(http.MethodPost, "/payment-intents", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
		assert.Equal(t, domain.ErrCodeNonPositiveAmount, resp.Code)
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		mux := newTestServer(&mockIntentService{}, nil, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-intents", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPaymentIntentsLiveness(t *testing.T) {
	mux := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/payment-intents", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message     string `json:"message"`
		Environment string `json:"environment"`
		Timestamp   string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "test", resp.Environment)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestConfirmPayment(t *testing.T) {
	confirmBody := func() []byte {
		body, _ := json.Marshal(map[string]any{
			"paymentIntentId":   "pi_test",
			"paymentMethodType": "card",
			"customerInfo": map[string]string{
				"name":    "John Doe",
				"address": "123 Main Street",
				"city":    "New York",
				"zip":     "10001",
			},
			"items":  eggyProItems(),
			"amount": 29.99,
		})
		return body
	}

	t.Run("returns 200 with order payload", func(t *testing.T) {
		confirmer := &mockConfirmService{
			confirmFn: func(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error) {
				return domain.NewOrder(cmd.PaymentIntentID, cmd.Amount, cmd.Items, cmd.Customer)
			},
		}
		mux := newTestServer(nil, confirmer, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-confirmations", bytes.NewReader(confirmBody()))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			OrderID         string  `json:"orderId"`
			PaymentIntentID string  `json:"paymentIntentId"`
			Status          string  `json:"status"`
			Amount          float64 `json:"amount"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.OrderID)
		assert.Equal(t, "pi_test", resp.PaymentIntentID)
		assert.Equal(t, "succeeded", resp.Status)
		assert.InDelta(t, 29.99, resp.Amount, 1e-9)
	})

	t.Run("field validation failure carries the field name", func(t *testing.T) {
		confirmer := &mockConfirmService{
			confirmFn: func(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error) {
				return nil, application.NewValidationError(
					domain.NewFieldError(domain.ErrCodeTooShort, domain.FieldName, "name must be at least 2 characters"))
			},
		}
		mux := newTestServer(nil, confirmer, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-confirmations", bytes.NewReader(confirmBody()))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "name", resp.Field)
		assert.Equal(t, domain.ErrCodeTooShort, resp.Code)
	})

	t.Run("disabled bypass maps to 403", func(t *testing.T) {
		confirmer := &mockConfirmService{
			confirmFn: func(ctx context.Context, cmd services.ConfirmCommand) (*domain.Order, error) {
				return nil, application.NewPaymentMethodDisabledError(string(cmd.Method))
			},
		}
		mux := newTestServer(nil, confirmer, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-confirmations", bytes.NewReader(confirmBody()))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestProducts(t *testing.T) {
	product := &domain.Product{
		ID:         "p1",
		Slug:       "eggypro-original",
		Name:       "EggyPro Original",
		PriceCents: 2999,
		Reviews: []domain.Review{
			{ID: "r1", ProductID: "p1", Author: "Jane", Rating: 5},
		},
	}

	t.Run("list products", func(t *testing.T) {
		catalog := &mockCatalogService{
			listFn: func(ctx context.Context) ([]*domain.Product, error) {
				return []*domain.Product{product}, nil
			},
		}
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "eggypro-original", resp[0]["slug"])
		assert.InDelta(t, 29.99, resp[0]["price"].(float64), 1e-9)
	})

	t.Run("get product by slug includes reviews", func(t *testing.T) {
		catalog := &mockCatalogService{
			getFn: func(ctx context.Context, slug string) (*domain.Product, error) {
				require.Equal(t, "eggypro-original", slug)
				return product, nil
			},
		}
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/eggypro-original", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp["reviews"], 1)
	})

	t.Run("unknown slug maps to 404", func(t *testing.T) {
		catalog := &mockCatalogService{
			getFn: func(ctx context.Context, slug string) (*domain.Product, error) {
				return nil, application.NewNotFoundError(domain.NewProductNotFoundError(slug))
			},
		}
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	catalog := &mockCatalogService{
		createFn: func(ctx context.Context, cmd services.CreateProductCommand) (*domain.Product, error) {
			return &domain.Product{ID: "p1", Slug: cmd.Slug, Name: cmd.Name}, nil
		},
	}
	body := func() []byte {
		b, _ := json.Marshal(map[string]any{"slug": "eggypro-original", "name": "EggyPro Original", "price": 29.99})
		return b
	}

	t.Run("missing header returns 401", func(t *testing.T) {
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body()))
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotContains(t, rr.Body.String(), adminToken)
	})

	t.Run("wrong token returns 403", func(t *testing.T) {
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body()))
		req.Header.Set("Authorization", "Bearer wrong-token")
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.NotContains(t, rr.Body.String(), adminToken)
	})

	t.Run("correct token creates the product", func(t *testing.T) {
		mux := newTestServer(nil, nil, catalog, nil)

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body()))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Run("healthy storage returns 200", func(t *testing.T) {
		mux := newTestServer(nil, nil, nil, &mockHealth{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unreachable storage returns 503", func(t *testing.T) {
		health := &mockHealth{
			healthFn: func(ctx context.Context) error {
				return errors.New("connection refused")
			},
		}
		mux := newTestServer(nil, nil, nil, health)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
