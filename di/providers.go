package di

import (
	"spa/config"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/scheduler"
	"spa/shared/timezone"

	"github.com/rs/zerolog/log"
)

func provideScheduler() *scheduler.Scheduler {
	return scheduler.New(timezone.SystemClock())
}

func providePolicies(cfg *config.Config) policy.Provider {
	provider, err := policy.NewProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load booking policy")
	}

	return provider
}
