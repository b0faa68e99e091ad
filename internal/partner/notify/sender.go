// Package notify delivers transactional email to partner staff.
package notify

import "context"

type Email struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers an email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, e Email) (string, error)
}
