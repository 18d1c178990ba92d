// Package session holds per-visitor state keyed by an opaque token.
// Nothing here survives a restart; carts live only for the session.
package session

import (
	"sync"
	"time"
)

// Store is the per-visitor cart service. Implementations must be safe for
// concurrent use across visitors; a single visitor's session is not
// expected to be mutated concurrently.
type Store interface {
	// Cart returns the visitor's cart, an empty map if none.
	Cart(token string) map[uint]int
	// SetCart replaces the visitor's cart wholesale. No validation of
	// product existence or quantity bounds happens here; checkout does that.
	SetCart(token string, entries map[uint]int)
	// ClearCart empties the visitor's cart.
	ClearCart(token string)
	// LastOrder returns the id of the order placed in this session, if any.
	LastOrder(token string) (uint, bool)
	// SetLastOrder remembers the order just placed in this session.
	SetLastOrder(token string, orderID uint)
}

type sessionData struct {
	cart      map[uint]int
	lastOrder uint
	hasOrder  bool
	expires   time.Time
}

// MemoryStore is an in-memory Store with a sliding per-token TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*sessionData
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates a store whose sessions expire after ttl of
// inactivity. A background sweeper drops expired sessions.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*sessionData),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, data := range s.sessions {
				if now.After(data.expires) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}

// get returns live session data or nil. Callers hold at least a read lock.
func (s *MemoryStore) get(token string) *sessionData {
	data, ok := s.sessions[token]
	if !ok || time.Now().After(data.expires) {
		return nil
	}
	return data
}

func (s *MemoryStore) touch(token string) *sessionData {
	data := s.get(token)
	if data == nil {
		data = &sessionData{cart: make(map[uint]int)}
		s.sessions[token] = data
	}
	data.expires = time.Now().Add(s.ttl)
	return data
}

func (s *MemoryStore) Cart(token string) map[uint]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uint]int)
	if data := s.get(token); data != nil {
		for id, qty := range data.cart {
			out[id] = qty
		}
	}
	return out
}

func (s *MemoryStore) SetCart(token string, entries map[uint]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.touch(token)
	data.cart = make(map[uint]int, len(entries))
	for id, qty := range entries {
		data.cart[id] = qty
	}
}

func (s *MemoryStore) ClearCart(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data := s.get(token); data != nil {
		data.cart = make(map[uint]int)
		data.expires = time.Now().Add(s.ttl)
	}
}

func (s *MemoryStore) LastOrder(token string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data := s.get(token); data != nil && data.hasOrder {
		return data.lastOrder, true
	}
	return 0, false
}

func (s *MemoryStore) SetLastOrder(token string, orderID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.touch(token)
	data.lastOrder = orderID
	data.hasOrder = true
}
