package cache

import (
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.UnlockStore = (*UnlockRecordStore)(nil)

// UnlockRecordStore caches the last snapshot fetched for each guest.
type UnlockRecordStore struct {
	store *lruStore[*unlock.Snapshot]
}

func NewUnlockRecordStore(size int) (*UnlockRecordStore, error) {
	s, err := newLRUStore[*unlock.Snapshot](size)
	if err != nil {
		return nil, err
	}
	return &UnlockRecordStore{store: s}, nil
}

func (s *UnlockRecordStore) Get(guest uuid.UUID) (*unlock.Snapshot, bool) {
	return s.store.get(guest)
}

func (s *UnlockRecordStore) Put(guest uuid.UUID, snap *unlock.Snapshot) {
	if snap == nil {
		s.store.invalidate(guest)
		return
	}
	s.store.put(guest, snap)
}

func (s *UnlockRecordStore) Invalidate(guest uuid.UUID) {
	s.store.invalidate(guest)
}

func (s *UnlockRecordStore) Len() int {
	return s.store.len()
}
