package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT"       envDefault:"8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	DatabaseDriver string `env:"PARTNER_DATABASE_DRIVER" envDefault:"sqlite"` // sqlite or postgres
	DatabaseFile   string `env:"PARTNER_DATABASE_FILE"   envDefault:"partner.db"`
	DatabaseURL    string `env:"PARTNER_DATABASE_URL"`
	PepperFile     string `env:"PARTNER_PEPPER_FILE"     envDefault:"pepper"`

	Issuer     string        `env:"PARTNER_ISSUER"      envDefault:"kidventure-partner-hub"`
	Audience   []string      `env:"PARTNER_AUDIENCE"    envDefault:"partner-dashboard" envSeparator:","`
	NumKeys    int           `env:"PARTNER_NUM_KEYS"    envDefault:"3"`
	AccessTTL  time.Duration `env:"PARTNER_ACCESS_TTL"  envDefault:"15m"`
	RefreshTTL time.Duration `env:"PARTNER_REFRESH_TTL" envDefault:"168h"`

	CheckinEarly     time.Duration `env:"CHECKIN_EARLY_WINDOW" envDefault:"30m"`
	CheckinLate      time.Duration `env:"CHECKIN_LATE_WINDOW"  envDefault:"15m"`
	InvitationTTL    time.Duration `env:"INVITATION_TTL"       envDefault:"168h"`
	PasswordResetTTL time.Duration `env:"PASSWORD_RESET_TTL"   envDefault:"1h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	DashboardURL       string   `env:"DASHBOARD_URL"        envDefault:"http://localhost:3000"`

	// Email is logged instead of sent when ResendAPIKey is empty.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"KidVenture Pass <partners@kidventurepass.com>"`

	// PlatformToken authorizes the consumer platform API. Empty disables it.
	PlatformToken string `env:"PLATFORM_TOKEN"`
}

// LoadConfig reads an optional .env file (or the file named by ENV_FILE)
// and then the environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", file, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
		if c.DatabaseFile == "" {
			return errors.New("config: PARTNER_DATABASE_FILE is required for sqlite")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("config: PARTNER_DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("config: unknown database driver %q", c.DatabaseDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.Issuer == "" {
		return errors.New("config: PARTNER_ISSUER must not be empty")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= c.AccessTTL {
		return errors.New("config: refresh TTL must be longer than a positive access TTL")
	}
	if c.PasswordResetTTL < 0 {
		return errors.New("config: PASSWORD_RESET_TTL must not be negative")
	}
	if c.CheckinEarly < 0 || c.CheckinLate < 0 {
		return errors.New("config: check-in windows must not be negative")
	}
	return nil
}
