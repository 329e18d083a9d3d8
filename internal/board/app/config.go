package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile string `env:"BOARD_DATABASE_FILE" envDefault:"board.db"`

	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// Invitation codes are short-lived on purpose; admins mint them while
	// the new user is standing by.
	InviteTTL        time.Duration `env:"BOARD_INVITE_TTL"         envDefault:"5m"`
	InviteCodeLength int           `env:"BOARD_INVITE_CODE_LENGTH" envDefault:"8"`
	OTPLength        int           `env:"BOARD_OTP_LENGTH"         envDefault:"8"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
