package commands

import (
	"context"
	"log/slog"

	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

// notifier never fails the calling operation.
type notifier struct {
	target shared.Notifier
	logger *slog.Logger
}

func (n notifier) send(ctx context.Context, userID uuid.UUID, level shared.NotificationLevel, topic, message string, data map[string]string) {
	if n.target == nil || message == "" {
		return
	}
	err := n.target.Notify(ctx, shared.Notification{
		UserID:  userID,
		Level:   level,
		Topic:   topic,
		Message: message,
		Data:    data,
	})
	if err != nil {
		n.logger.Warn("通知の送信に失敗しました", "user_id", userID, "topic", topic, "error", err)
	}
}

func (n notifier) failure(ctx context.Context, userID uuid.UUID, err error) {
	n.send(ctx, userID, shared.LevelError, shared.TopicOperationFailed, shared.UserMessage(err), nil)
}
