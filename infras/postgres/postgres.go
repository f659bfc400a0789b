package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"spa/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
	defaultTimezone           = "UTC"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// target describes one side of the read/write pair.
type target struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := target{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   DBName(config, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}

	read := target{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   DBName(config, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// DBName returns the database name with prefix if configured.
func DBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// dataSourceName pins the session timezone so timestamptz values come back in UTC
// unless configured otherwise.
func (t target) dataSourceName() string {
	timezone := t.timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	query := url.Values{}
	query.Set("sslmode", t.sslMode)
	query.Set("timezone", timezone)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(t.username, t.password),
		Host:     net.JoinHostPort(t.host, t.port),
		Path:     "/" + t.dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(t target, maxRetry, waitTime int) *sqlx.DB {
	descriptor := t.dataSourceName()

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", t.name).
				Str("host", t.host).
				Str("port", t.port).
				Str("dbName", t.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", t.name).
			Str("host", t.host).
			Str("port", t.port).
			Str("dbName", t.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Err(fmt.Errorf("gave up after %d attempts", maxRetry)).Str("name", t.name).Msg("Failed connecting to database")

	return nil
}
