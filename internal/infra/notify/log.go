package notify

import (
	"context"
	"log/slog"

	"guest-conversion/internal/usecase/shared"
)

// LogNotifier writes every notification to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	level := slog.LevelInfo
	if msg.Level == shared.LevelError {
		level = slog.LevelWarn
	}
	attrs := []any{
		slog.String("user_id", msg.UserID.String()),
		slog.String("level", string(msg.Level)),
		slog.String("topic", msg.Topic),
		slog.String("message", msg.Message),
	}
	if len(msg.Data) > 0 {
		attrs = append(attrs, slog.Any("data", msg.Data))
	}
	n.logger.Log(ctx, level, "ユーザー通知", attrs...)
	return nil
}
