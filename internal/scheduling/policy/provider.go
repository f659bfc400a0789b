package policy

import (
	"fmt"
	"os"
	"spa/config"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Provider hands out the policy snapshot that applies to a location.
type Provider interface {
	ForLocation(locationID *string) Config
}

type override struct {
	DepositPercentage             *string `yaml:"deposit_percentage"`
	CancellationWindowHours       *int    `yaml:"cancellation_window_hours"`
	LateCancellationFeePercentage *string `yaml:"late_cancellation_fee_percentage"`
	MinDurationMinutes            *int    `yaml:"min_duration_minutes"`
	MaxDurationMinutes            *int    `yaml:"max_duration_minutes"`
	MaxBookingAdvanceDays         *int    `yaml:"max_booking_advance_days"`
	MaxNotesLength                *int    `yaml:"max_notes_length"`
	OpeningHour                   *int    `yaml:"opening_hour"`
	ClosingHour                   *int    `yaml:"closing_hour"`
}

type overrideFile struct {
	Locations map[string]override `yaml:"locations"`
}

type provider struct {
	defaults  Config
	locations map[string]Config
}

// NewProvider builds the default policy from cfg and layers the per-location overrides
// found in cfg.Booking.PolicyFile, if any.
func NewProvider(cfg *config.Config) (Provider, error) {
	defaults, err := Default(cfg)
	if err != nil {
		return nil, err
	}

	p := &provider{defaults: defaults, locations: map[string]Config{}}

	if cfg.Booking.PolicyFile == "" {
		return p, nil
	}

	raw, err := os.ReadFile(cfg.Booking.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	if err := p.load(raw); err != nil {
		return nil, err
	}

	log.Info().Str("file", cfg.Booking.PolicyFile).Int("locations", len(p.locations)).Msg("Loaded location booking policies")

	return p, nil
}

// NewStaticProvider serves the same snapshot for every location.
func NewStaticProvider(defaults Config) Provider {
	return &provider{defaults: defaults, locations: map[string]Config{}}
}

func (p *provider) ForLocation(locationID *string) Config {
	if locationID == nil {
		return p.defaults
	}

	if policy, ok := p.locations[*locationID]; ok {
		return policy
	}

	return p.defaults
}

func (p *provider) load(raw []byte) error {
	var file overrideFile

	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode policy file: %w", err)
	}

	for location, o := range file.Locations {
		policy, err := o.apply(p.defaults)
		if err != nil {
			return fmt.Errorf("location %s: %w", location, err)
		}

		p.locations[location] = policy
	}

	return nil
}

func (o override) apply(base Config) (Config, error) {
	policy := base

	if o.DepositPercentage != nil {
		deposit, err := decimal.NewFromString(*o.DepositPercentage)
		if err != nil {
			return Config{}, fmt.Errorf("parse deposit percentage: %w", err)
		}

		policy.DepositPercentage = deposit
	}

	if o.LateCancellationFeePercentage != nil {
		fee, err := decimal.NewFromString(*o.LateCancellationFeePercentage)
		if err != nil {
			return Config{}, fmt.Errorf("parse late cancellation fee percentage: %w", err)
		}

		policy.LateCancellationFeePercentage = fee
	}

	setInt(&policy.CancellationWindowHours, o.CancellationWindowHours)
	setInt(&policy.MinDurationMinutes, o.MinDurationMinutes)
	setInt(&policy.MaxDurationMinutes, o.MaxDurationMinutes)
	setInt(&policy.MaxBookingAdvanceDays, o.MaxBookingAdvanceDays)
	setInt(&policy.MaxNotesLength, o.MaxNotesLength)
	setInt(&policy.OpeningHour, o.OpeningHour)
	setInt(&policy.ClosingHour, o.ClosingHour)

	if err := policy.Validate(); err != nil {
		return Config{}, err
	}

	return policy, nil
}

func setInt(dst *int, value *int) {
	if value != nil {
		*dst = *value
	}
}
