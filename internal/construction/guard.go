package construction

import (
	"sync"

	"github.com/google/uuid"
)

// Guard holds the process-wide active construction tool. Arming a session cancels
// the previous holder first.
type Guard struct {
	mu     sync.Mutex
	holder uuid.UUID
	cancel func()
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{}
}

var defaultGuard = NewGuard()

// DefaultGuard returns the guard shared by sessions created without one.
func DefaultGuard() *Guard {
	return defaultGuard
}

// Acquire makes id the active tool. The previous holder's cancel runs outside the lock.
func (g *Guard) Acquire(id uuid.UUID, cancel func()) {
	g.mu.Lock()
	prev, prevCancel := g.holder, g.cancel
	g.holder, g.cancel = id, cancel
	g.mu.Unlock()

	if prev != uuid.Nil && prev != id && prevCancel != nil {
		prevCancel()
	}
}

// Release drops the tool if id holds it.
func (g *Guard) Release(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.holder == id {
		g.holder, g.cancel = uuid.Nil, nil
	}
}

// Active returns the current holder.
func (g *Guard) Active() (uuid.UUID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.holder, g.holder != uuid.Nil
}

// Cancel cancels the active tool, as when another window takes focus.
func (g *Guard) Cancel() {
	g.mu.Lock()
	cancel := g.cancel
	g.holder, g.cancel = uuid.Nil, nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
