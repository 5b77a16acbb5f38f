// Package registry keeps outstanding payment intents in process memory.
// Confirmation re-validates caller-supplied data, so losing this state on
// restart is acceptable; the registry exists so a confirmed order can
// reference an intent that has actually been advanced to succeeded.
package registry

import (
	"sync"
	"time"

	"github.com/eggypro/storefront-gateway/internal/domain"
)

type Memory struct {
	mu      sync.RWMutex
	intents map[string]*domain.PaymentIntent
}

func NewMemory() *Memory {
	return &Memory{
		intents: make(map[string]*domain.PaymentIntent),
	}
}

func (m *Memory) Put(intent *domain.PaymentIntent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[intent.ID] = intent
}

func (m *Memory) Find(id string) (*domain.PaymentIntent, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	intent, ok := m.intents[id]
	return intent, ok
}

// PurgeOlderThan drops intents created before cutoff that were never
// confirmed. Finalized intents are kept; the sweeper only reclaims
// abandoned checkouts.
func (m *Memory) PurgeOlderThan(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var purged int
	for id, intent := range m.intents {
		if intent.Status() == domain.StatusRequiresPaymentMethod && intent.CreatedAt.Before(cutoff) {
			delete(m.intents, id)
			purged++
		}
	}
	return purged
}

// Len reports the number of tracked intents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.intents)
}
