package handlers

import (
	"net/http"

	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

type confirmRequest struct {
	PaymentIntentID   string              `json:"paymentIntentId"`
	PaymentMethodType string              `json:"paymentMethodType"`
	CustomerInfo      domain.CustomerInfo `json:"customerInfo"`
	Items             []domain.LineItem   `json:"items"`
	Amount            float64             `json:"amount"`
}

type confirmResponse struct {
	OrderID         string  `json:"orderId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
}

// ConfirmPayment handles POST /payment-confirmations.
func (h *Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	order, err := h.confirmer.Confirm(r.Context(), services.ConfirmCommand{
		PaymentIntentID: req.PaymentIntentID,
		Method:          domain.PaymentMethod(req.PaymentMethodType),
		Customer:        req.CustomerInfo,
		Items:           req.Items,
		Amount:          req.Amount,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, confirmResponse{
		OrderID:         order.ID,
		PaymentIntentID: order.PaymentIntentID,
		Status:          string(order.Status),
		Amount:          order.Amount,
	})
}
