package cache

import (
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.DealCodeStore = (*DealCodeLedger)(nil)

type DealCodeLedger struct {
	store *lruStore[*dealcode.Ledger]
}

func NewDealCodeLedger(size int) (*DealCodeLedger, error) {
	s, err := newLRUStore[*dealcode.Ledger](size)
	if err != nil {
		return nil, err
	}
	return &DealCodeLedger{store: s}, nil
}

func (l *DealCodeLedger) Get(guest uuid.UUID) (*dealcode.Ledger, bool) {
	return l.store.get(guest)
}

func (l *DealCodeLedger) Put(guest uuid.UUID, ledger *dealcode.Ledger) {
	if ledger == nil {
		l.store.invalidate(guest)
		return
	}
	l.store.put(guest, ledger)
}

func (l *DealCodeLedger) Invalidate(guest uuid.UUID) {
	l.store.invalidate(guest)
}

func (l *DealCodeLedger) Len() int {
	return l.store.len()
}
