package usecase

import (
	"context"
	"sync"
)

// Ticket identifies one request started through a Gate.
type Ticket uint64

// Gate tracks the most recent request so late responses from superseded
// requests can be dropped. Starting a request cancels the previous one.
type Gate struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewGate() *Gate { return &Gate{} }

// Begin starts a new request derived from parent and supersedes any in flight.
func (g *Gate) Begin(parent context.Context) (Ticket, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.gen++
	g.cancel = cancel
	return Ticket(g.gen), ctx
}

// Accept reports whether t is still the latest request.
func (g *Gate) Accept(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return uint64(t) == g.gen
}

// Finish releases t's context if t is still the latest request.
func (g *Gate) Finish(t Ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if uint64(t) == g.gen && g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Stop cancels whatever is in flight and invalidates every issued ticket.
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.gen++
}
