package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every secret and setting the pipeline is instantiated with.
// Values come from the environment, optionally preloaded from a .env file.
type Config struct {
	TelegramToken      string        `envconfig:"TG_TOKEN" required:"true"`
	OpenAIKey          string        `envconfig:"OPENAI_API_KEY" required:"true"`
	OpenAIModel        string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	GoogleClientID     string        `envconfig:"GOOGLE_CLIENT_ID" required:"true"`
	GoogleClientSecret string        `envconfig:"GOOGLE_CLIENT_SECRET" required:"true"`
	GoogleRefreshToken string        `envconfig:"GOOGLE_REFRESH_TOKEN" required:"true"`
	Timezone           string        `envconfig:"TIMEZONE" default:"Europe/Berlin"`
	Address            string        `envconfig:"HTTP_ADDRESS" default:":8080"`
	ExtractTimeout     time.Duration `envconfig:"EXTRACT_TIMEOUT" default:"30s"`
	CalendarTimeout    time.Duration `envconfig:"CALENDAR_TIMEOUT" default:"15s"`
	JWTPublicKeyFile   string        `envconfig:"JWT_PUBLIC_KEY_FILE"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"debug"`
}

// RequiredVars lists the env vars that must be set for the bot to run.
// Shared with cmd/checkconfig.
var RequiredVars = []string{
	"TG_TOKEN",
	"OPENAI_API_KEY",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"GOOGLE_REFRESH_TOKEN",
}

func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("err loading config: %w", err)
	}
	return cfg, nil
}
