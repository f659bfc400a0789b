package logger

import (
	"io"
	"os"
	"spa/config"
	"spa/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs a human readable console logger for startup.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// Configure applies the configured level and output format.
func Configure(cfg *config.Config, out io.Writer) {
	SetLogLevel(cfg)
	SetOutput(cfg, out)
}

// ErrorWithStack logs err with a stack trace attached at the call site.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel falls back to info when LOG_LEVEL is empty or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("configured", cfg.Server.LogLevel).Stringer("level", defaultLevel).Msg("Unknown log level, using default")

		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)
}

// SetOutput switches to structured JSON tagged with the app name outside development.
func SetOutput(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env != constant.ServerEnvProduction {
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
}
