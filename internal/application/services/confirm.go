package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/domain"
)

// ConfirmCommand carries a confirmation request. Items and amount are
// client-echoed and re-validated here; a hostile or buggy caller is the
// same threat model as at creation.
type ConfirmCommand struct {
	PaymentIntentID string
	Method          domain.PaymentMethod
	Customer        domain.CustomerInfo
	Items           []domain.LineItem
	Amount          float64
}

// ConfirmService is the confirmation processor. The bypass capability is
// injected at construction, never read from ambient process state.
type ConfirmService struct {
	registry    application.IntentRegistry
	orders      application.OrderStore
	allowBypass bool
	logger      *slog.Logger
}

func NewConfirmService(
	registry application.IntentRegistry,
	orders application.OrderStore,
	allowBypass bool,
	logger *slog.Logger,
) *ConfirmService {
	return &ConfirmService{
		registry:    registry,
		orders:      orders,
		allowBypass: allowBypass,
		logger:      logger,
	}
}

// Confirm applies the method-specific decision procedure and, on success,
// produces exactly one order. Repeated confirmation of the same intent id
// is not guarded: each successful call yields an independent order.
func (s *ConfirmService) Confirm(ctx context.Context, cmd ConfirmCommand) (*domain.Order, error) {
	if cmd.PaymentIntentID == "" {
		return nil, application.NewValidationError(domain.NewMissingPaymentIntentError())
	}

	if err := domain.Reconcile(cmd.Items, cmd.Amount); err != nil {
		return nil, application.NewValidationError(err)
	}

	customer := cmd.Customer
	switch cmd.Method {
	case domain.MethodBypass:
		if !s.allowBypass {
			return nil, application.NewPaymentMethodDisabledError(string(cmd.Method))
		}
		s.logger.Warn("bypass payment method used", "payment_intent_id", cmd.PaymentIntentID)

	default:
		validated, err := domain.ValidateCustomerInfo(cmd.Customer)
		if err != nil {
			return nil, application.NewValidationError(err)
		}
		customer = validated
	}

	s.finalizeIntent(cmd)

	// An aborted request must not leave a partially visible order.
	if err := ctx.Err(); err != nil {
		return nil, application.NewInternalError(err)
	}

	order, err := domain.NewOrder(cmd.PaymentIntentID, cmd.Amount, cmd.Items, customer)
	if err != nil {
		return nil, application.NewValidationError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"payment_intent_id", order.PaymentIntentID,
		"amount", order.Amount,
		"method", string(cmd.Method),
	)

	return order, nil
}

// finalizeIntent advances the registered intent to succeeded so the order
// always references a finalized intent when one is known. An unknown id is
// tolerated: intents need not survive between creation and confirmation,
// and the command has already been re-validated above.
func (s *ConfirmService) finalizeIntent(cmd ConfirmCommand) {
	intent, ok := s.registry.Find(cmd.PaymentIntentID)
	if !ok {
		s.logger.Info("confirming unregistered payment intent",
			"payment_intent_id", cmd.PaymentIntentID)
		return
	}

	if math.Abs(intent.Amount()-cmd.Amount) > domain.AmountTolerance {
		s.logger.Warn("confirmation amount differs from intent",
			"payment_intent_id", intent.ID,
			"intent_amount", intent.Amount(),
			"confirmed_amount", cmd.Amount,
		)
	}

	if err := intent.MarkSucceeded(); err != nil {
		// Already succeeded: a repeat confirmation. Logged, not rejected.
		s.logger.Warn("payment intent already finalized",
			"payment_intent_id", intent.ID,
			"status", string(intent.Status()),
		)
	}
}
