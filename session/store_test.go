package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CartRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	assert.Empty(t, store.Cart("visitor-a"), "unknown token yields empty cart")

	store.SetCart("visitor-a", map[uint]int{5: 2, 9: 1})
	assert.Equal(t, map[uint]int{5: 2, 9: 1}, store.Cart("visitor-a"))

	// Wholesale replacement, not merge.
	store.SetCart("visitor-a", map[uint]int{7: 3})
	assert.Equal(t, map[uint]int{7: 3}, store.Cart("visitor-a"))
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	store.SetCart("visitor-a", map[uint]int{1: 1})
	store.SetCart("visitor-b", map[uint]int{2: 4})

	assert.Equal(t, map[uint]int{1: 1}, store.Cart("visitor-a"))
	assert.Equal(t, map[uint]int{2: 4}, store.Cart("visitor-b"))

	store.ClearCart("visitor-a")
	assert.Empty(t, store.Cart("visitor-a"))
	assert.Equal(t, map[uint]int{2: 4}, store.Cart("visitor-b"))
}

func TestMemoryStore_ReturnedCartIsACopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	store.SetCart("visitor-a", map[uint]int{1: 1})
	cart := store.Cart("visitor-a")
	cart[1] = 99

	assert.Equal(t, map[uint]int{1: 1}, store.Cart("visitor-a"))
}

func TestMemoryStore_LastOrder(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	_, ok := store.LastOrder("visitor-a")
	assert.False(t, ok)

	store.SetLastOrder("visitor-a", 42)
	id, ok := store.LastOrder("visitor-a")
	require.True(t, ok)
	assert.Equal(t, uint(42), id)

	// Clearing the cart keeps the last order around for the confirmation page.
	store.ClearCart("visitor-a")
	id, ok = store.LastOrder("visitor-a")
	require.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	defer store.Close()

	store.SetCart("visitor-a", map[uint]int{1: 1})
	store.SetLastOrder("visitor-a", 7)

	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, store.Cart("visitor-a"))
	_, ok := store.LastOrder("visitor-a")
	assert.False(t, ok)
}
