package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kidventure/partnerhub/internal/partner/notify"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		DatabaseDriver:       "sqlite",
		DatabaseFile:         filepath.Join(dir, "partner.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Issuer:               "partner-hub-test",
		Audience:             []string{"partner-dashboard"},
		NumKeys:              1,
		AccessTTL:            15 * time.Minute,
		RefreshTTL:           time.Hour,
		PlatformToken:        "platform-secret",
	}
}

func TestApplicationServesRoutes(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	client := partnersdk.NewClient(srv.URL)

	ready, err := client.Readiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, BuildVersion, ready.Version)

	resp, err := http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplicationWithoutResendLogsEmail(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	id, err := app.mailer.Send(t.Context(), notify.Email{
		To:      []string{"someone@sprouts.example"},
		Subject: "Join Little Sprouts on KidVenture Pass",
	})
	require.NoError(t, err)
	require.Contains(t, id, "log-")
}
