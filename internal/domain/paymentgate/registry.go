package paymentgate

import (
	"log/slog"
	"sync"

	"guest-conversion/internal/pkg/clock"

	"github.com/google/uuid"
)

// Registry holds at most one gate per owner.
type Registry struct {
	mu         sync.Mutex
	gates      map[uuid.UUID]*Gate
	countdown  int
	clock      clock.Clock
	redirector Redirector
	logger     *slog.Logger
}

func NewRegistry(countdown int, clk clock.Clock, redirector Redirector, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		gates:      make(map[uuid.UUID]*Gate),
		countdown:  countdown,
		clock:      clk,
		redirector: redirector,
		logger:     logger,
	}
}

// Open shows a new gate for owner, closing any gate the owner already had.
func (r *Registry) Open(owner uuid.UUID, subject Subject, paymentURL string, onVerified RefetchFunc) *Gate {
	g := newGate(owner, subject, paymentURL, r.countdown, r.clock, r.redirector, onVerified, r.logger)

	r.mu.Lock()
	prev := r.gates[owner]
	r.gates[owner] = g
	r.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	g.start()

	r.logger.Info("現地払いゲートを表示しました",
		"gate_id", g.ID(), "owner", owner, "subject", subject.String(), "countdown", r.countdown)
	return g
}

func (r *Registry) Get(owner uuid.UUID) (*Gate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[owner]
	return g, ok
}

// Release drops g from the registry without closing it (used after verification).
func (r *Registry) Release(g *Gate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.gates[g.Owner()]; ok && cur == g {
		delete(r.gates, g.Owner())
	}
}

// Close dismisses the owner's gate. It reports whether one was open.
func (r *Registry) Close(owner uuid.UUID) bool {
	r.mu.Lock()
	g, ok := r.gates[owner]
	delete(r.gates, owner)
	r.mu.Unlock()
	if ok {
		g.Close()
	}
	return ok
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	gates := r.gates
	r.gates = make(map[uuid.UUID]*Gate)
	r.mu.Unlock()
	for _, g := range gates {
		g.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.gates)
}
