package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/eggypro/storefront-gateway/internal/domain"
)

// mockRegistry is an in-memory intent registry with overridable behavior.
type mockRegistry struct {
	mu      sync.RWMutex
	intents map[string]*domain.PaymentIntent

	FindFn func(id string) (*domain.PaymentIntent, bool)
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{intents: make(map[string]*domain.PaymentIntent)}
}

func (m *mockRegistry) Put(intent *domain.PaymentIntent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[intent.ID] = intent
}

func (m *mockRegistry) Find(id string) (*domain.PaymentIntent, bool) {
	if m.FindFn != nil {
		return m.FindFn(id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	intent, ok := m.intents[id]
	return intent, ok
}

func (m *mockRegistry) PurgeOlderThan(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var purged int
	for id, intent := range m.intents {
		if intent.CreatedAt.Before(cutoff) && intent.Status() == domain.StatusRequiresPaymentMethod {
			delete(m.intents, id)
			purged++
		}
	}
	return purged
}

// mockOrderStore records saved orders and can be forced to fail.
type mockOrderStore struct {
	mu     sync.Mutex
	orders []*domain.Order

	SaveFn func(ctx context.Context, order *domain.Order) error
}

func (m *mockOrderStore) Save(ctx context.Context, order *domain.Order) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderStore) saved() []*domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Order(nil), m.orders...)
}

// mockCatalog backs catalog service tests.
type mockCatalog struct {
	mu       sync.RWMutex
	products map[string]*domain.Product

	FindBySlugFn func(ctx context.Context, slug string) (*domain.Product, error)
	CreateFn     func(ctx context.Context, product *domain.Product) error
	AddReviewFn  func(ctx context.Context, review *domain.Review) error
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{products: make(map[string]*domain.Product)}
}

func (m *mockCatalog) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if m.FindBySlugFn != nil {
		return m.FindBySlugFn(ctx, slug)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[slug]; ok {
		return p, nil
	}
	return nil, domain.NewProductNotFoundError(slug)
}

func (m *mockCatalog) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockCatalog) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.Slug]; ok {
		return domain.NewDuplicateSlugError(product.Slug)
	}
	m.products[product.Slug] = product
	return nil
}

func (m *mockCatalog) AddReview(ctx context.Context, review *domain.Review) error {
	if m.AddReviewFn != nil {
		return m.AddReviewFn(ctx, review)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == review.ProductID {
			p.Reviews = append(p.Reviews, *review)
			return nil
		}
	}
	return domain.NewProductNotFoundError(review.ProductID)
}
