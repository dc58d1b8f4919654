package unlock

import (
	"time"

	"guest-conversion/internal/pkg/money"
)

// Stats are the aggregate counts reported alongside the records.
type Stats struct {
	Total           int
	Active          int
	Cancelled       int
	Converted       int
	PendingFeedback int
	TotalSpent      money.Amount
}

// Snapshot is the guest's full unlock set at one point in time.
type Snapshot struct {
	records   []*Record
	index     map[string]*Record
	stats     Stats
	fetchedAt time.Time
}

func NewSnapshot(records []*Record, stats Stats, fetchedAt time.Time) *Snapshot {
	index := make(map[string]*Record, len(records))
	kept := make([]*Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		index[r.ID()] = r
		kept = append(kept, r)
	}
	return &Snapshot{
		records:   kept,
		index:     index,
		stats:     stats,
		fetchedAt: fetchedAt,
	}
}

func (s *Snapshot) Find(id string) (*Record, bool) {
	r, ok := s.index[id]
	return r, ok
}

func (s *Snapshot) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Snapshot) Stats() Stats         { return s.stats }
func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }
func (s *Snapshot) Len() int             { return len(s.records) }
