package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInviteEmail(t *testing.T) {
	t.Parallel()

	e, err := InviteEmail(Invite{
		To:               "new@sprouts.example",
		OrganizationName: "Little <b>Sprouts</b>",
		Role:             "staff",
		DashboardURL:     "https://partners.example/",
		Token:            "abc+123",
		ExpiresAt:        time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"new@sprouts.example"}, e.To)
	require.Contains(t, e.Subject, "Little <b>Sprouts</b>")
	require.Contains(t, e.HTML, `href="https://partners.example/signup?token=abc%2B123"`)
	require.Contains(t, e.HTML, "<strong>staff</strong>")
	require.Contains(t, e.HTML, "March 9, 2026")
	require.NotContains(t, e.HTML, "<b>")
}

func TestResetEmail(t *testing.T) {
	t.Parallel()

	e, err := ResetEmail(Reset{
		To:           "casey@sprouts.example",
		FirstName:    "Casey *",
		DashboardURL: "https://partners.example",
		Token:        "r/st",
		ExpiresAt:    time.Date(2026, 3, 9, 13, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"casey@sprouts.example"}, e.To)
	require.Equal(t, "Reset your KidVenture Pass password", e.Subject)
	require.Contains(t, e.HTML, `href="https://partners.example/reset-password?token=r%2Fst"`)
	require.Contains(t, e.HTML, "Hi Casey *,")
	require.Contains(t, e.HTML, "13:30 on March 9, 2026")
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	id, err := LogSender{}.Send(context.Background(), Email{To: []string{"a@b.example"}, Subject: "hi"})
	require.NoError(t, err)
	require.Contains(t, id, "log-")
}
