package notify

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Reset struct {
	To           string
	FirstName    string
	DashboardURL string
	Token        string
	ExpiresAt    time.Time
}

// ResetURL is the dashboard page that sets the new password.
func (r Reset) ResetURL() string {
	return strings.TrimRight(r.DashboardURL, "/") + "/reset-password?token=" + url.QueryEscape(r.Token)
}

// ResetEmail renders the password reset link.
func ResetEmail(r Reset) (Email, error) {
	greeting := "Hi,"
	if r.FirstName != "" {
		greeting = "Hi " + escapeMarkdown(r.FirstName) + ","
	}
	src := fmt.Sprintf(`# Reset your password

%s

Someone asked to reset the password of your KidVenture Pass partner account.

[Choose a new password](%s)

The link can be used once and expires at %s UTC. If you did not ask for a
reset you can ignore this email; your password stays the same.
`, greeting, r.ResetURL(), r.ExpiresAt.UTC().Format("15:04 on January 2, 2006"))

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return Email{}, fmt.Errorf("notify: render reset: %w", err)
	}
	return Email{
		To:      []string{r.To},
		Subject: "Reset your KidVenture Pass password",
		HTML:    buf.String(),
	}, nil
}
