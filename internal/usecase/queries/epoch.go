package queries

import (
	"sync"

	"github.com/google/uuid"
)

// fetchEpochs orders cache writes per guest. A reload bumps the epoch, and a
// fetch that started under an older epoch may not write its result.
type fetchEpochs struct {
	mu sync.Mutex
	m  map[uuid.UUID]*epoch
}

type epoch struct {
	gen     uint64
	pending int
}

func newFetchEpochs() *fetchEpochs {
	return &fetchEpochs{m: make(map[uuid.UUID]*epoch)}
}

func (f *fetchEpochs) entry(guest uuid.UUID) *epoch {
	e, ok := f.m[guest]
	if !ok {
		e = &epoch{}
		f.m[guest] = e
	}
	return e
}

// begin registers a fetch under the current epoch.
func (f *fetchEpochs) begin(guest uuid.UUID) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.entry(guest)
	e.pending++
	return e.gen
}

// beginReload registers a fetch under a new epoch, superseding every fetch
// already running for the guest.
func (f *fetchEpochs) beginReload(guest uuid.UUID) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.entry(guest)
	e.pending++
	e.gen++
	return e.gen
}

// commit runs put only when no reload started after gen. It reports whether
// put ran.
func (f *fetchEpochs) commit(guest uuid.UUID, gen uint64, put func()) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.m[guest]
	if !ok || e.gen != gen {
		return false
	}
	put()
	return true
}

func (f *fetchEpochs) end(guest uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.m[guest]
	if !ok {
		return
	}
	e.pending--
	if e.pending <= 0 {
		delete(f.m, guest)
	}
}
