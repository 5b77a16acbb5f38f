package application

import (
	"context"
	"time"

	"github.com/eggypro/storefront-gateway/internal/domain"
)

// IntentRegistry tracks outstanding payment intents within the process.
// Lookup is best-effort: confirmation re-validates caller-supplied data and
// does not require the intent to have survived since creation.
type IntentRegistry interface {
	Put(intent *domain.PaymentIntent)
	Find(id string) (*domain.PaymentIntent, bool)

	// PurgeOlderThan removes intents created before cutoff that never left
	// requires_payment_method, returning the number removed.
	PurgeOlderThan(cutoff time.Time) int
}

// OrderStore persists finalized orders. The single insert is the only
// durability requirement this core places on it.
type OrderStore interface {
	Save(ctx context.Context, order *domain.Order) error
}

// ProductCatalog is the storage boundary for catalog reads and the
// administrative write path.
type ProductCatalog interface {
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	AddReview(ctx context.Context, review *domain.Review) error
}
