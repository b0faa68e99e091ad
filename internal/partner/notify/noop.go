package notify

import (
	"context"
	"log/slog"

	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

// LogSender logs emails instead of delivering them. It is used when no
// Resend API key is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, e Email) (string, error) {
	id := "log-" + idx.New().String()
	slogx.FromContext(ctx).Info("email not delivered",
		slog.String("message_id", id),
		slog.Int("recipients", len(e.To)),
		slog.String("subject", e.Subject),
	)
	return id, nil
}
