package handlers

import (
	"net/http"
	"time"

	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

type createIntentRequest struct {
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Items        []domain.LineItem `json:"items"`
	CustomerInfo *struct {
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
	} `json:"customerInfo,omitempty"`
}

type createIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

// CreatePaymentIntent handles POST /payment-intents.
func (h *Handlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	intent, err := h.intents.CreateIntent(r.Context(), services.CreateIntentCommand{
		Amount:   req.Amount,
		Currency: req.Currency,
		Items:    req.Items,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, createIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.AmountCents,
		Currency:        intent.Currency,
		Status:          string(intent.Status()),
	})
}

type livenessResponse struct {
	Message     string    `json:"message"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentIntentsLiveness handles GET /payment-intents. A probe with no
// side effects.
func (h *Handlers) PaymentIntentsLiveness(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, livenessResponse{
		Message:     "payment intent endpoint is live",
		Environment: h.environment,
		Timestamp:   time.Now().UTC(),
	})
}
