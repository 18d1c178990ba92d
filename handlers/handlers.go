package handlers

import (
	"time"

	"resto-menu-api/session"
)

// Sessions holds every visitor's cart. Carts live in memory only and die
// with the session; an order only exists once checkout succeeds.
var Sessions session.Store = session.NewMemoryStore(24 * time.Hour)
