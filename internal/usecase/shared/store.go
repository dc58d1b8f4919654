package shared

import (
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/unlock"

	"github.com/google/uuid"
)

// UnlockStore caches the latest unlock snapshot per guest. Entries are
// replaced wholesale, never patched.
type UnlockStore interface {
	Get(guest uuid.UUID) (*unlock.Snapshot, bool)
	Put(guest uuid.UUID, snap *unlock.Snapshot)
	Invalidate(guest uuid.UUID)
}

type DealCodeStore interface {
	Get(guest uuid.UUID) (*dealcode.Ledger, bool)
	Put(guest uuid.UUID, ledger *dealcode.Ledger)
	Invalidate(guest uuid.UUID)
}
