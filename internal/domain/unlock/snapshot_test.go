//go:build unit

package unlock_test

import (
	"testing"
	"time"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	u1 := builder.NewUnlockBuilder().WithID("U1").MustBuild()
	u2 := builder.NewUnlockBuilder().WithID("U2").NonRefundable().MustBuild()
	at := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	snap := unlock.NewSnapshot([]*unlock.Record{u1, nil, u2}, unlock.Stats{Total: 2}, at)

	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, at, snap.FetchedAt())
	assert.Equal(t, 2, snap.Stats().Total)

	found, ok := snap.Find("U2")
	assert.True(t, ok)
	assert.Same(t, u2, found)

	_, ok = snap.Find("U9")
	assert.False(t, ok)

	// 返されたスライスを変更してもスナップショットは変わらない
	records := snap.Records()
	records[0] = nil
	assert.NotNil(t, snap.Records()[0])
}
