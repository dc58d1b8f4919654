package notify

import (
	"context"
	"encoding/json"
	"time"

	"guest-conversion/internal/infra/repository"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobCreator interface {
	CreateJob(ctx context.Context, db repository.DBTX, userID uuid.UUID, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
}

type outboxPayload struct {
	Level   shared.NotificationLevel `json:"level"`
	Message string                   `json:"message"`
	Data    map[string]string        `json:"data,omitempty"`
}

// OutboxNotifier enqueues dashboard jobs in notification_jobs for an external
// delivery worker.
type OutboxNotifier struct {
	db    shared.TxBeginner
	jobs  JobCreator
	clock clock.Clock
}

func NewOutboxNotifier(db shared.TxBeginner, jobs JobCreator, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{db: db, jobs: jobs, clock: clk}
}

func (n *OutboxNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	payload, err := json.Marshal(outboxPayload{
		Level:   msg.Level,
		Message: msg.Message,
		Data:    msg.Data,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	runAt := n.clock.Now()
	return shared.WithDefaultRetry(ctx, n.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := n.jobs.CreateJob(ctx, tx, msg.UserID, repository.JobKindDashboard, msg.Topic, payload, runAt)
		return err
	})
}
