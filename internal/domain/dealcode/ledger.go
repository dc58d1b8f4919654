package dealcode

import "time"

// Ledger is a read-only projection over the guest's deal codes.
type Ledger struct {
	codes     []*DealCode
	fetchedAt time.Time
}

type Summary struct {
	Total            int
	Usable           int
	Inactive         int
	RemainingUnlocks int
}

func NewLedger(codes []*DealCode, fetchedAt time.Time) *Ledger {
	kept := make([]*DealCode, 0, len(codes))
	for _, c := range codes {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &Ledger{codes: kept, fetchedAt: fetchedAt}
}

func (l *Ledger) Codes() []*DealCode {
	out := make([]*DealCode, len(l.codes))
	copy(out, l.codes)
	return out
}

func (l *Ledger) Usable(now time.Time) []*DealCode {
	var out []*DealCode
	for _, c := range l.codes {
		if c.IsUsable(now) {
			out = append(out, c)
		}
	}
	return out
}

func (l *Ledger) Find(code Code) (*DealCode, bool) {
	for _, c := range l.codes {
		if c.Code() == code {
			return c, true
		}
	}
	return nil, false
}

func (l *Ledger) Summarize(now time.Time) Summary {
	s := Summary{Total: len(l.codes)}
	for _, c := range l.codes {
		if c.IsUsable(now) {
			s.Usable++
			s.RemainingUnlocks += c.RemainingUnlocks()
		} else {
			s.Inactive++
		}
	}
	return s
}

func (l *Ledger) FetchedAt() time.Time { return l.fetchedAt }
