package commands

import (
	"sync"

	"guest-conversion/internal/pkg/errs"
)

// InFlight allows one outstanding mutation per key.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]struct{})}
}

// Acquire returns a release func, or ErrOperationInFlight when key is held.
func (f *InFlight) Acquire(key string) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, held := f.keys[key]; held {
		return nil, errs.Wrapf(ErrOperationInFlight, "key %s", key)
	}
	f.keys[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.keys, key)
			f.mu.Unlock()
		})
	}, nil
}

func (f *InFlight) Held(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, held := f.keys[key]
	return held
}

func unlockKey(id string) string  { return "unlock:" + id }
func bookingKey(id string) string { return "booking:" + id }
