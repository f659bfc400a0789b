package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"spa/config"
	"spa/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

type step struct {
	run     func(mig *migrate.Migrate) error
	message string
}

var steps = map[string]step{
	ActionUp:     {run: (*migrate.Migrate).Up, message: "Database migrations completed successfully"},
	ActionDown:   {run: func(mig *migrate.Migrate) error { return mig.Steps(-1) }, message: "Database migration rolled back successfully"},
	ActionStepUp: {run: func(mig *migrate.Migrate) error { return mig.Steps(1) }, message: "Database migration applied successfully"},
	ActionDrop:   {run: (*migrate.Migrate).Down, message: "Database migrations rolled back successfully"},
}

// DatabaseURL points golang-migrate at the write database.
func DatabaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if config.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + postgres.DBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func Runner(config *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := migrate.New(migrationsSource, DatabaseURL(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()

	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Str("action", action).Msg(step.message)
	case err != nil:
		return fmt.Errorf("error reading migration version: %w", err)
	default:
		log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg(step.message)
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
