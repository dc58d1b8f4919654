package commands

import (
	"sync"

	"guest-conversion/internal/domain/checkin"

	"github.com/google/uuid"
)

type sessionEntry struct {
	session    checkin.Session
	generation uint64
}

// SessionRegistry holds one ephemeral check-in session per staff user.
// Every replacement bumps the generation, so results of a call that
// started before a reset can be detected and dropped.
type SessionRegistry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]sessionEntry
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{entries: make(map[uuid.UUID]sessionEntry)}
}

func (r *SessionRegistry) Get(staff uuid.UUID) (checkin.Session, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[staff]
	if !ok {
		return checkin.NewSession(), 0
	}
	return e.session, e.generation
}

// Replace stores s unconditionally and returns the new generation.
func (r *SessionRegistry) Replace(staff uuid.UUID, s checkin.Session) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entries[staff]
	e.session = s
	e.generation++
	r.entries[staff] = e
	return e.generation
}

// ApplyIf stores s only if the session is still at generation gen.
func (r *SessionRegistry) ApplyIf(staff uuid.UUID, gen uint64, s checkin.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entries[staff]
	if e.generation != gen {
		return false
	}
	e.session = s
	e.generation++
	r.entries[staff] = e
	return true
}
