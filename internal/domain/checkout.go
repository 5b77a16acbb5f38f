// Package domain encodes the checkout entities and the rules that gate them.
package domain

// LineItem is a single cart entry as submitted by the client.
// Immutable once it enters a request.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CustomerInfo is the shipping/billing identity attached at confirmation
// time, not at intent creation.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Email   string `json:"email,omitempty"`
}

// PaymentMethod selects the confirmation decision procedure.
type PaymentMethod string

const (
	// MethodCard is the simulated card path: full customer field validation,
	// then success. There is no branch that declines a valid card.
	MethodCard PaymentMethod = "card"

	// MethodBypass skips card-specific checks entirely. Only reachable when
	// the confirmation processor was constructed with bypass allowed.
	MethodBypass PaymentMethod = "bypass"
)
