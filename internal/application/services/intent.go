package services

import (
	"context"
	"log/slog"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/domain"
)

// CreateIntentCommand carries a validated-shape request to mint an intent.
type CreateIntentCommand struct {
	Amount   float64
	Currency string
	Items    []domain.LineItem
}

// IntentService is the payment intent generator. Each creation is
// independent; there is no shared counter and no cross-intent locking.
type IntentService struct {
	registry application.IntentRegistry
	logger   *slog.Logger
}

func NewIntentService(registry application.IntentRegistry, logger *slog.Logger) *IntentService {
	return &IntentService{
		registry: registry,
		logger:   logger,
	}
}

// CreateIntent validates the command and mints a new payment intent in
// requires_payment_method. Precondition order is fixed (amount, currency,
// items, reconciliation) so the first failure reported is deterministic.
func (s *IntentService) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (*domain.PaymentIntent, error) {
	intent, err := domain.NewPaymentIntent(cmd.Amount, cmd.Currency, cmd.Items)
	if err != nil {
		return nil, application.NewValidationError(err)
	}

	s.registry.Put(intent)

	s.logger.Info("payment intent created",
		"payment_intent_id", intent.ID,
		"amount_cents", intent.AmountCents,
		"currency", intent.Currency,
	)

	return intent, nil
}
