package timezone

import (
	"fmt"
	"spa/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
	loadOnce    sync.Once
	mu          sync.RWMutex
)

// location resolves APP_TIMEZONE on first use and falls back to UTC.
func location() *time.Location {
	loadOnce.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			log.Warn().Msg("No timezone configured, using UTC as default")

			return
		}

		if err := setLocation(name); err != nil {
			log.Error().
				Err(err).
				Str("timezone", name).
				Msg("Failed to load timezone, falling back to UTC. Please use IANA names like 'Asia/Makassar' or 'UTC'")
		}
	})

	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// SetLocation overrides the application timezone and skips the configured one.
func SetLocation(name string) error {
	loadOnce.Do(func() {})

	return setLocation(name)
}

func setLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load location %q: %w", name, err)
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return nil
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

// GetLocation returns the application timezone.
func GetLocation() *time.Location {
	return location()
}

// Parse parses a wall-clock value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(layout, value, location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}

	return parsed, nil
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
