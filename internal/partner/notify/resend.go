package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/kidventure/partnerhub/pkg/slogx"
)

// ResendSender sends email through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, e Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      e.To,
		Subject: e.Subject,
		Html:    e.HTML,
	}
	if e.ReplyTo != "" {
		params.ReplyTo = e.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("notify: resend: %w", err)
	}

	slogx.FromContext(ctx).Info("email sent",
		slog.String("message_id", sent.Id),
		slog.String("subject", e.Subject),
	)
	return sent.Id, nil
}
