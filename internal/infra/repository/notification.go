package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"guest-conversion/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	JobKindDashboard = "dashboard"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Topic     string
	Payload   json.RawMessage
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError *string
	CreatedAt time.Time
}

const createNotificationJob = `
INSERT INTO notification_jobs (user_id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const listNotificationJobsByUser = `
SELECT id, user_id, kind, topic, payload, run_at, attempts, status, last_error, created_at
FROM notification_jobs
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, last_error = $3, attempts = attempts + 1, updated_at = now()
WHERE id = $1`

type NotificationRepository struct {
	logger *slog.Logger
}

func NewNotificationRepository(logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{logger: logger}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, db DBTX, userID uuid.UUID, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createNotificationJob,
		userID, kind, topic, payload,
		pgtype.Timestamptz{Time: runAt, Valid: true},
		JobStatusQueued,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create notification job", err)
	}
	return id, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, listNotificationJobsByUser, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var (
			job       NotificationJob
			runAt     pgtype.Timestamptz
			createdAt pgtype.Timestamptz
			lastError pgtype.Text
		)
		if err := rows.Scan(&job.ID, &job.UserID, &job.Kind, &job.Topic, &job.Payload,
			&runAt, &job.Attempts, &job.Status, &lastError, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan notification job", err)
		}
		job.RunAt = runAt.Time
		job.CreatedAt = createdAt.Time
		if lastError.Valid {
			job.LastError = &lastError.String
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, db DBTX, jobID uuid.UUID, status string, lastError *string) error {
	errText := pgtype.Text{}
	if lastError != nil {
		errText = pgtype.Text{String: *lastError, Valid: true}
	}
	tag, err := db.Exec(ctx, updateNotificationJobStatus, jobID, status, errText)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update notification job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "notification job not found", nil)
	}
	return nil
}
