package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, []string{"partner-dashboard"}, cfg.Audience)
	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	require.Equal(t, 30*time.Minute, cfg.CheckinEarly)
	require.Equal(t, 15*time.Minute, cfg.CheckinLate)
	require.Equal(t, 7*24*time.Hour, cfg.InvitationTTL)
	require.Equal(t, time.Hour, cfg.PasswordResetTTL)
	require.Empty(t, cfg.PlatformToken)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "partner.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"PORT=9090\nCHECKIN_EARLY_WINDOW=45m\nCORS_ALLOWED_ORIGINS=https://a.example,https://b.example\n",
	), 0o600))
	t.Setenv("ENV_FILE", file)
	t.Setenv("CHECKIN_LATE_WINDOW", "5m")

	// godotenv.Load exports the file into the process environment.
	t.Cleanup(func() {
		for _, k := range []string{"PORT", "CHECKIN_EARLY_WINDOW", "CORS_ALLOWED_ORIGINS"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 45*time.Minute, cfg.CheckinEarly)
	require.Equal(t, 5*time.Minute, cfg.CheckinLate)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		DatabaseDriver: "sqlite",
		DatabaseFile:   "partner.db",
		Port:           8080,
		Issuer:         "hub",
		AccessTTL:      time.Minute,
		RefreshTTL:     time.Hour,
	}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"unknown driver":        func(c *Config) { c.DatabaseDriver = "mysql" },
		"postgres without url":  func(c *Config) { c.DatabaseDriver = "postgres" },
		"bad port":              func(c *Config) { c.Port = 0 },
		"empty issuer":          func(c *Config) { c.Issuer = "" },
		"refresh before access": func(c *Config) { c.RefreshTTL = time.Second },
		"negative window":       func(c *Config) { c.CheckinLate = -time.Minute },
		"negative reset ttl":    func(c *Config) { c.PasswordResetTTL = -time.Minute },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
