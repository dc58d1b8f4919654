//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON form of a request DTO before it is sent, so binding
// rules can be exercised with values the typed DTO cannot hold.
type Mutation func(map[string]any)

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Without(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}

// RequestMap round-trips v through JSON and applies the mutations in order.
func RequestMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}
