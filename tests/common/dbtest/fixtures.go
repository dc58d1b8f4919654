//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// OutboxRow is a notification_jobs row as the tests see it.
type OutboxRow struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Status  string
	Payload map[string]any
}

// NotificationJobs returns the user's outbox rows, oldest first.
func NotificationJobs(t *testing.T, db DBLike, userID uuid.UUID) []OutboxRow {
	t.Helper()

	ctx := context.Background()
	rows, err := db.Query(ctx, `
		SELECT id, kind, topic, status, payload
		FROM notification_jobs
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	require.NoError(t, err)
	defer rows.Close()

	var out []OutboxRow
	for rows.Next() {
		var (
			r   OutboxRow
			raw []byte
		)
		require.NoError(t, rows.Scan(&r.ID, &r.Kind, &r.Topic, &r.Status, &raw))
		require.NoError(t, json.Unmarshal(raw, &r.Payload))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

// NotificationTopics is NotificationJobs reduced to topics.
func NotificationTopics(t *testing.T, db DBLike, userID uuid.UUID) []string {
	t.Helper()
	jobs := NotificationJobs(t, db, userID)
	topics := make([]string, 0, len(jobs))
	for _, j := range jobs {
		topics = append(topics, j.Topic)
	}
	return topics
}

// ResetDB empties the outbox between subtests.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Exec(ctx, "TRUNCATE notification_jobs")
	return err
}
