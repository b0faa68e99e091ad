package notify

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in the markdown source is escaped since WithUnsafe is not set.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

type Invite struct {
	To               string
	OrganizationName string
	Role             string
	DashboardURL     string
	Token            string
	ExpiresAt        time.Time
}

// SignupURL is the dashboard page that verifies and claims the token.
func (i Invite) SignupURL() string {
	return strings.TrimRight(i.DashboardURL, "/") + "/signup?token=" + url.QueryEscape(i.Token)
}

// InviteEmail renders the invitation sent to new staff.
func InviteEmail(i Invite) (Email, error) {
	src := fmt.Sprintf(`# You're invited to %s

%s has invited you to join their KidVenture Pass partner dashboard as **%s**.

[Create your account](%s)

The link can be used once and expires on %s. If you were not expecting
this invitation you can ignore this email.
`, escapeMarkdown(i.OrganizationName), escapeMarkdown(i.OrganizationName), i.Role, i.SignupURL(),
		i.ExpiresAt.Format("January 2, 2006"))

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return Email{}, fmt.Errorf("notify: render invite: %w", err)
	}
	return Email{
		To:      []string{i.To},
		Subject: "Join " + i.OrganizationName + " on KidVenture Pass",
		HTML:    buf.String(),
	}, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`, "`", "\\`", `#`, `\#`, `<`, `&lt;`,
)

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
