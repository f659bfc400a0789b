package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"spa-booking"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		Enable  bool     `envconfig:"ENABLE"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		TLS bool `envconfig:"TLS"`
	} `envconfig:"KAFKA"`

	// Booking holds the default booking policy. Per-location overrides live in PolicyFile.
	Booking struct {
		DepositPercentage             string `envconfig:"DEPOSIT_PERCENTAGE"              default:"0.50"`
		CancellationWindowHours       int    `envconfig:"CANCELLATION_WINDOW_HOURS"       default:"24"`
		LateCancellationFeePercentage string `envconfig:"LATE_CANCELLATION_FEE_PERCENTAGE" default:"1.00"`
		MinDurationMinutes            int    `envconfig:"MIN_DURATION_MINUTES"            default:"15"`
		MaxDurationMinutes            int    `envconfig:"MAX_DURATION_MINUTES"            default:"480"`
		MaxBookingAdvanceDays         int    `envconfig:"MAX_BOOKING_ADVANCE_DAYS"        default:"90"`
		MaxNotesLength                int    `envconfig:"MAX_NOTES_LENGTH"                default:"500"`
		OpeningHour                   int    `envconfig:"OPENING_HOUR"                    default:"9"`
		ClosingHour                   int    `envconfig:"CLOSING_HOUR"                    default:"21"`
		LockTTLSeconds                int    `envconfig:"LOCK_TTL_SECONDS"                default:"10"`
		PolicyFile                    string `envconfig:"POLICY_FILE"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf     Config
	loadErr  error
	loadOnce sync.Once
)

// Load reads the optional .env file and then the process environment.
// Values already present in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn().Err(err).Strs("files", envFiles).Msg("Could not load env file, continuing with existing environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	b := c.Booking

	switch {
	case b.MinDurationMinutes <= 0 || b.MaxDurationMinutes < b.MinDurationMinutes:
		return fmt.Errorf("invalid booking duration bounds %d..%d", b.MinDurationMinutes, b.MaxDurationMinutes)
	case b.OpeningHour < 0 || b.ClosingHour > 24 || b.OpeningHour >= b.ClosingHour:
		return fmt.Errorf("invalid opening hours %d..%d", b.OpeningHour, b.ClosingHour)
	case b.LockTTLSeconds <= 0:
		return fmt.Errorf("invalid lock ttl %d", b.LockTTLSeconds)
	}

	return nil
}

// Init loads the process-wide configuration once.
func Init() error {
	loadOnce.Do(func() {
		var cfg *Config

		cfg, loadErr = Load()
		if loadErr != nil {
			return
		}

		conf = *cfg

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
	})

	return loadErr
}

// Get returns the process-wide configuration, exiting when it cannot be loaded.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return &conf
}
