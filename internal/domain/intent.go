package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IntentStatus represents the current state of a payment intent in its lifecycle
type IntentStatus string

const (
	StatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	StatusProcessing            IntentStatus = "processing"
	StatusSucceeded             IntentStatus = "succeeded"
)

// PaymentIntent is a mock record of an attempted charge, prior to
// confirmation. Everything except the status is immutable after creation.
// The registry shares intents across request goroutines and the sweeper,
// so status reads and transitions go through the intent's own mutex.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Items        []LineItem
	CreatedAt    time.Time

	mu     sync.Mutex
	status IntentStatus
}

// NewPaymentIntent validates and mints a payment intent. Preconditions run
// in a fixed order, first failure wins: positive amount, currency present,
// items present, reconciled total. Amount is taken in major units and
// stored in minor units.
func NewPaymentIntent(amount float64, currency string, items []LineItem) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, NewNonPositiveAmountError(amount)
	}
	if strings.TrimSpace(currency) == "" {
		return nil, NewMissingCurrencyError()
	}
	if len(items) == 0 {
		return nil, NewEmptyCartError()
	}
	if err := Reconcile(items, amount); err != nil {
		return nil, err
	}

	id := NewIntentID()
	return &PaymentIntent{
		ID:           id,
		ClientSecret: newClientSecret(id),
		AmountCents:  int64(math.Round(amount * 100)),
		Currency:     strings.ToLower(strings.TrimSpace(currency)),
		Items:        slices.Clone(items),
		CreatedAt:    time.Now(),
		status:       StatusRequiresPaymentMethod,
	}, nil
}

// Status returns the intent's current lifecycle state.
func (pi *PaymentIntent) Status() IntentStatus {
	pi.mu.Lock()
	defer pi.mu.Unlock()
	return pi.status
}

// Amount returns the intent total in major currency units.
func (pi *PaymentIntent) Amount() float64 {
	return float64(pi.AmountCents) / 100
}

// MarkProcessing exists for forward compatibility with a real gateway;
// no current caller produces this transition.
func (pi *PaymentIntent) MarkProcessing() error {
	return pi.transition(StatusProcessing)
}

// MarkSucceeded finalizes the intent. Succeeded is terminal.
func (pi *PaymentIntent) MarkSucceeded() error {
	return pi.transition(StatusSucceeded)
}

func (pi *PaymentIntent) transition(target IntentStatus) error {
	pi.mu.Lock()
	defer pi.mu.Unlock()
	if err := pi.canTransitionTo(target); err != nil {
		return err
	}
	pi.status = target
	return nil
}

// canTransitionTo runs with pi.mu held.
func (pi *PaymentIntent) canTransitionTo(target IntentStatus) error {
	switch pi.status {
	case StatusRequiresPaymentMethod:
		return pi.allow(target, StatusProcessing, StatusSucceeded)
	case StatusProcessing:
		return pi.allow(target, StatusSucceeded)
	}
	return NewInvalidTransitionError(pi.status, target)
}

// Helper to check allowed state transitions
func (pi *PaymentIntent) allow(target IntentStatus, allowed ...IntentStatus) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(pi.status, target)
}

// NewIntentID mints a payment intent identifier. The pi_ prefix keeps
// intent ids distinguishable by shape from order ids.
func NewIntentID() string {
	return fmt.Sprintf("pi_%s", uuid.NewString())
}

func newClientSecret(intentID string) string {
	return fmt.Sprintf("%s_secret_%s", intentID, uuid.NewString())
}
