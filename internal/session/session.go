package session

import (
	"time"

	"lumiere/internal/cart"
	"lumiere/internal/view"
)

// Session is one visitor's cart and page state. It lives only in memory.
type Session struct {
	ID       string
	Cart     *cart.Cart
	View     view.State
	LastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		Cart:     cart.New(),
		View:     view.New(),
		LastSeen: now,
	}
}
