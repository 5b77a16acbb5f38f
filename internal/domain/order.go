package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the state of a finalized order. Orders are only created
// from successful confirmations, so succeeded is the sole value.
type OrderStatus string

const OrderStatusSucceeded OrderStatus = "succeeded"

// Order is the record produced by a successful confirmation. Created
// exactly once per confirmation, never mutated afterward.
type Order struct {
	ID              string
	PaymentIntentID string
	Status          OrderStatus
	Amount          float64
	Items           []LineItem
	Customer        CustomerInfo
	CreatedAt       time.Time
}

// NewOrder assembles an order for a finalized payment intent.
func NewOrder(paymentIntentID string, amount float64, items []LineItem, customer CustomerInfo) (*Order, error) {
	if paymentIntentID == "" {
		return nil, errors.New("payment intent ID is required")
	}
	if amount <= 0 {
		return nil, errors.New("order amount must be positive")
	}
	if len(items) == 0 {
		return nil, errors.New("order requires at least one item")
	}

	return &Order{
		ID:              NewOrderID(),
		PaymentIntentID: paymentIntentID,
		Status:          OrderStatusSucceeded,
		Amount:          amount,
		Items:           slices.Clone(items),
		Customer:        customer,
		CreatedAt:       time.Now(),
	}, nil
}

// NewOrderID mints an order identifier, prefix-distinct from intent ids.
func NewOrderID() string {
	return fmt.Sprintf("order_%s", uuid.NewString())
}
